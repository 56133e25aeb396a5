package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"chat-cli/internal/config"
	"chat-cli/internal/conversation"
	"chat-cli/internal/llm"
	"chat-cli/internal/prompt"
	"chat-cli/internal/session"
)

func main() {
	configPath := flag.String("config", "", "path to config file (optional)")
	input := flag.String("input", "", "send a single prompt and exit")
	interactive := flag.Bool("interactive", false, "force the interactive prompt loop")
	flag.Parse()

	if err := run(*configPath, *input, *interactive); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(configPath, input string, interactive bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	client, err := llm.NewOpenAIClient(llm.OpenAIConfig{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
		Model:   cfg.Model,
	}, logger)
	if err != nil {
		return err
	}

	builder, err := prompt.NewBuilder(prompt.BuilderConfig{
		DefaultModel:       cfg.Model,
		DefaultTemperature: cfg.Temperature,
	})
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if input != "" || (!interactive && !stdinIsTerminal()) {
		return runOnce(ctx, builder, client, input)
	}

	orchestrator, err := conversation.New(builder, session.New(), client, logger,
		conversation.WithSystemPrompt(cfg.SystemPrompt))
	if err != nil {
		return err
	}
	return runLoop(ctx, orchestrator)
}

// runOnce reads one prompt (from the flag or the first line of stdin), sends
// it with defaults, and prints the reply.
func runOnce(ctx context.Context, builder *prompt.Builder, client llm.Client, input string) error {
	if input == "" {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read prompt: %w", err)
		}
		input = strings.TrimSpace(line)
	}

	req, err := builder.Single(input)
	if err != nil {
		return err
	}

	result, err := client.Complete(ctx, req.Messages, req.Config)
	if err != nil {
		return err
	}

	fmt.Println(result.Content)
	return nil
}

// runLoop reads lines until EOF or "exit", threading the transcript so each
// turn sees the prior ones. Per-turn errors are displayed and the loop
// continues.
func runLoop(ctx context.Context, orchestrator *conversation.Orchestrator) error {
	reader := bufio.NewReader(os.Stdin)
	fmt.Println("Type a message and press enter. Type 'exit' to quit.")

	for {
		select {
		case <-ctx.Done():
			fmt.Println()
			return nil
		default:
		}

		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Println()
				return nil
			}
			return fmt.Errorf("read input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			return nil
		}

		reply, err := orchestrator.Ask(ctx, line)
		if err != nil {
			if ctx.Err() != nil {
				fmt.Println()
				return nil
			}
			fmt.Fprintln(os.Stderr, "error:", err)
			continue
		}
		fmt.Println(reply)
	}
}

func stdinIsTerminal() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
