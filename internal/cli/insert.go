package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mrlokans/wordcache/internal/config"
	"github.com/mrlokans/wordcache/internal/database"
	"github.com/mrlokans/wordcache/internal/database/words"
	"github.com/mrlokans/wordcache/internal/dictionary"
	"github.com/mrlokans/wordcache/internal/lookup"
)

// ErrInsertFailed is returned when at least one word could not be stored.
var ErrInsertFailed = errors.New("some words were not added")

// InsertCommand fetches words from the dictionary provider and stores them
// without running the HTTP server.
type InsertCommand struct {
	DatabasePath string
	Words        []string

	cfg  *config.Config
	dict dictionary.Client
	out  io.Writer
}

func NewInsertCommand() *InsertCommand {
	return &InsertCommand{out: os.Stdout}
}

func (cmd *InsertCommand) ParseFlags(args []string) error {
	cmd.cfg = config.NewConfig()

	fs := flag.NewFlagSet("insert", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", cmd.cfg.Database.Path, "Path to the word database")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s insert [options] <word> [word...]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Look up words with the dictionary provider and store them.\n")
		fmt.Fprintf(os.Stderr, "Requires DICT_KEY in the environment or a .env file.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	cmd.Words = fs.Args()
	if len(cmd.Words) == 0 {
		return fmt.Errorf("at least one word is required")
	}

	if cmd.dict == nil {
		if err := cmd.cfg.Validate(); err != nil {
			return err
		}
		cmd.dict = dictionary.NewMerriamWebsterClient(cmd.cfg.DictionaryClientConfig())
	}

	return nil
}

func (cmd *InsertCommand) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewQuietDatabase(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	engine := lookup.NewEngine(words.NewRepository(db.DB), cmd.dict)
	defer engine.Wait(context.Background())

	failed := 0
	for _, word := range cmd.Words {
		outcome, err := engine.Insert(ctx, word)
		if err != nil {
			fmt.Fprintf(cmd.out, "%-20s error: %v\n", word, err)
			failed++
			if ctx.Err() != nil {
				break
			}
			continue
		}

		switch outcome.Kind {
		case lookup.OutcomeCreated:
			fmt.Fprintf(cmd.out, "%-20s added\n", outcome.Word)
		case lookup.OutcomeDuplicateRejected:
			fmt.Fprintf(cmd.out, "%-20s already stored\n", outcome.Word)
		case lookup.OutcomeRemoteNotFound:
			failed++
			if len(outcome.Suggestions) > 0 {
				fmt.Fprintf(cmd.out, "%-20s not found, did you mean: %v\n", outcome.Word, outcome.Suggestions)
			} else {
				fmt.Fprintf(cmd.out, "%-20s not found\n", outcome.Word)
			}
		case lookup.OutcomeRemoteUnavailable:
			failed++
			fmt.Fprintf(cmd.out, "%-20s provider unavailable: %s\n", outcome.Word, outcome.Detail)
		default:
			failed++
			fmt.Fprintf(cmd.out, "%-20s unexpected result: %s\n", outcome.Word, outcome.Kind)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrInsertFailed, failed, len(cmd.Words))
	}
	return nil
}
