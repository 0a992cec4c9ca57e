package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/seqfn/seqfn"
)

const (
	appName     = "seqfn"
	historyFile = ".seqfn_history"
	promptMain  = "==> "
)

var banner = fmt.Sprintf("%s playground\nCtrl+C cancels input, Ctrl+D exits. Type :help for commands.", appName)

func red(s string) string   { return "\x1b[31m" + s + "\x1b[0m" }
func green(s string) string { return "\x1b[32m" + s + "\x1b[0m" }

func main() {
	app := &cli.App{
		Name:  appName,
		Usage: "interactive playground for the seqfn traversal library",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable ANSI colors in output",
			},
			&cli.StringFlag{
				Name:  "history",
				Usage: "REPL history file (default: $HOME/" + historyFile + ")",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "repl",
				Usage:  "start the interactive playground (default)",
				Action: runRepl,
			},
			{
				Name:      "eval",
				Usage:     "evaluate a single playground line and exit",
				ArgsUsage: "<line>",
				Action: func(c *cli.Context) error {
					line := strings.Join(c.Args().Slice(), " ")
					if strings.TrimSpace(line) == "" {
						return cli.Exit("eval: no input", 2)
					}
					out, err := evalLine(line, builtins())
					if err != nil {
						return cli.Exit(err.Error(), 1)
					}
					fmt.Println(out)
					return nil
				},
			},
		},
		Action: runRepl,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", appName, err)
		os.Exit(1)
	}
}

func historyPath(c *cli.Context) string {
	if p := c.String("history"); p != "" {
		return p
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, historyFile)
}

func runRepl(c *cli.Context) error {
	seqfn.EnableColor = !c.Bool("no-color")
	fmt.Println(banner)

	histPath := historyPath(c)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		} else {
			logrus.WithError(err).Warn("could not save history")
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	reg := builtins()

	for {
		line, err := ln.Prompt(promptMain)
		if err != nil { // Ctrl+D or Ctrl+C
			fmt.Println()
			break
		}
		code := strings.TrimSpace(line)
		if code == "" {
			continue
		}

		if strings.HasPrefix(code, ":") {
			switch strings.ToLower(code) {
			case ":quit", ":q":
				return nil
			case ":help", ":h":
				fmt.Print(helpText)
			case ":fns":
				fmt.Println(listFns(reg))
			default:
				fmt.Println("unknown command. Type :help for commands, :quit to exit.")
			}
			continue
		}

		out, err := evalLine(code, reg)
		if err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
			continue
		}
		fmt.Println(out)
		ln.AppendHistory(code)
	}

	return nil
}
