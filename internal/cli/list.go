package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/wordcache/internal/config"
	"github.com/mrlokans/wordcache/internal/database"
	"github.com/mrlokans/wordcache/internal/database/words"
)

// ListCommand prints every stored word, one per line.
type ListCommand struct {
	DatabasePath string

	out io.Writer
}

func NewListCommand() *ListCommand {
	return &ListCommand{out: os.Stdout}
}

func (cmd *ListCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.NewConfig().Database.Path, "Path to the word database")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s list [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Print all stored words in alphabetical order.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *ListCommand) Run() error {
	db, err := database.NewQuietDatabase(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	stored, err := words.NewRepository(db.DB).ListWords(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list words: %w", err)
	}

	for _, word := range stored {
		fmt.Fprintln(cmd.out, word)
	}
	return nil
}
