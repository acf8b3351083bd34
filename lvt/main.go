package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/GLADIATORTR/LoveableTracker-sub000/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// A .env next to the ledger holds the user's API keys (GEMINI_API_KEY).
	godotenv.Load()

	// Shell completion: exits early when invoked by the shell.
	completion().Complete("lvt")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	sub := make(map[string]*complete.Command, len(cmd.CommandNames()))
	for _, name := range cmd.CommandNames() {
		sub[name] = &complete.Command{}
	}
	return &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"dir": predict.Dirs("*"),
		},
	}
}
