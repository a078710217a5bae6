package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/wordcache/internal/dictionary"
)

type tableDictionary map[string]dictionary.Result

func (d tableDictionary) Lookup(_ context.Context, word string) dictionary.Result {
	if res, ok := d[word]; ok {
		return res
	}
	return dictionary.NotFound{Suggestions: []string{}}
}

func (d tableDictionary) Name() string { return "table" }

func TestInsertAndListCommands(t *testing.T) {
	t.Chdir(t.TempDir())
	dbPath := filepath.Join(t.TempDir(), "words.db")

	var insertOut bytes.Buffer
	insert := NewInsertCommand()
	insert.out = &insertOut
	insert.dict = tableDictionary{
		"counsel": dictionary.Found{Definition: `[{"meta":{"id":"counsel"}}]`},
		"dismal":  dictionary.Found{Definition: `[{"meta":{"id":"dismal"}}]`},
		"cousel":  dictionary.NotFound{Suggestions: []string{"counsel"}},
	}

	require.NoError(t, insert.ParseFlags([]string{"-db", dbPath, "Dismal", "counsel", "cousel", "counsel"}))
	err := insert.Run()

	assert.ErrorIs(t, err, ErrInsertFailed)
	assert.Contains(t, insertOut.String(), "dismal               added")
	assert.Contains(t, insertOut.String(), "cousel               not found, did you mean: [counsel]")
	assert.Contains(t, insertOut.String(), "counsel              already stored")

	var listOut bytes.Buffer
	list := NewListCommand()
	list.out = &listOut

	require.NoError(t, list.ParseFlags([]string{"-db", dbPath}))
	require.NoError(t, list.Run())

	assert.Equal(t, "counsel\ndismal\n", listOut.String())
}

func TestInsertCommand_ParseFlags(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Run("requires a word", func(t *testing.T) {
		cmd := NewInsertCommand()
		cmd.dict = tableDictionary{}

		assert.Error(t, cmd.ParseFlags(nil))
	})

	t.Run("requires a dictionary key", func(t *testing.T) {
		t.Setenv("DICT_KEY", "")

		cmd := NewInsertCommand()

		assert.Error(t, cmd.ParseFlags([]string{"counsel"}))
	})

	t.Run("builds the provider client from the environment", func(t *testing.T) {
		t.Setenv("DICT_KEY", "secret-key")

		cmd := NewInsertCommand()

		require.NoError(t, cmd.ParseFlags([]string{"counsel"}))
		assert.Equal(t, "merriam-webster", cmd.dict.Name())
		assert.Equal(t, []string{"counsel"}, cmd.Words)
	})
}
