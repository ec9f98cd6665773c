package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/petasbytes/cozyreq/agent"
	"github.com/petasbytes/cozyreq/internal/logging"
	"github.com/petasbytes/cozyreq/internal/tui"
	"github.com/petasbytes/cozyreq/memory"
	"github.com/petasbytes/cozyreq/messages"
	"github.com/petasbytes/cozyreq/tools"
)

const systemPrompt = "You are a helpful assistant. Use the available tools when they can answer the user's question; otherwise answer directly."

func main() {
	var (
		promptFlag = flag.String("p", "", "prompt to run (positional arguments work too)")
		model      = flag.String("model", "", "model identifier (defaults to the built-in model)")
		maxTurns   = flag.Int("max-turns", 0, "abort after this many model exchanges (0 = unlimited)")
		savePath   = flag.String("save", "", "write the transcript to this file as JSON")
		demoTUI    = flag.Bool("tui", false, "open the request inspector demo UI")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *demoTUI {
		if _, err := tea.NewProgram(tui.NewDemo(), tea.WithAltScreen()).Run(); err != nil {
			fmt.Fprintf(os.Stderr, "tui: %v\n", err)
			os.Exit(1)
		}
		return
	}

	prompt := strings.TrimSpace(*promptFlag)
	if prompt == "" {
		prompt = strings.TrimSpace(strings.Join(flag.Args(), " "))
	}
	if prompt == "" {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <prompt>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}

	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(os.Stderr, "Missing ANTHROPIC_API_KEY; export it before running.")
		os.Exit(1)
	}

	level := "info"
	if *verbose {
		level = "debug"
	}
	log := logging.New(level, true)

	catalog, err := tools.NewCatalog(tools.Registry()...)
	if err != nil {
		log.Error().Err(err).Msg("building tool catalog")
		os.Exit(1)
	}

	opts := []agent.Option{
		agent.WithAPIKey(apiKey),
		agent.WithLogger(log),
		agent.WithMaxTurns(*maxTurns),
	}
	if *model != "" {
		opts = append(opts, agent.WithModel(*model))
	}
	a, err := agent.New(systemPrompt, catalog, opts...)
	if err != nil {
		log.Error().Err(err).Msg("configuring agent")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	history, runErr := a.Run(ctx, prompt)
	printTranscript(history)

	if *savePath != "" {
		if err := memory.SaveTranscript(*savePath, history); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to save transcript: %v\n", err)
		}
	}

	if runErr != nil {
		if errors.Is(runErr, agent.ErrCancelled) {
			fmt.Println("\nExiting...")
			return
		}
		log.Error().Err(runErr).Msg("run failed")
		os.Exit(1)
	}
}

func printTranscript(history []messages.Message) {
	for _, m := range history {
		switch msg := m.(type) {
		case messages.UserMessage:
			fmt.Printf("\u001b[94mYou\u001b[0m: %s\n", msg.Content)
		case messages.AssistantMessage:
			if txt := msg.Text(); txt != "" {
				fmt.Printf("\u001b[93mClaude\u001b[0m: %s\n", txt)
			}
			for _, use := range msg.ToolUses() {
				fmt.Printf("\u001b[92mtool\u001b[0m: %s(%s)\n", use.Name, string(use.Input))
			}
		case messages.ToolResultMessage:
			prefix := "result"
			if msg.IsError {
				prefix = "error"
			}
			fmt.Printf("\u001b[92m%s\u001b[0m: %s\n", prefix, msg.Content)
		}
	}
}
