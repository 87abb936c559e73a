package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Builtin(t *testing.T) {
	table, err := New(nil)

	require.NoError(t, err)
	assert.Greater(t, table.Len(), 50)
	assert.Equal(t, "#00ADD8", table.Color("Go"))
	assert.Equal(t, "#f34b7d", table.Color("C++"))
	assert.Equal(t, "#DA5B0B", table.Color("Jupyter Notebook"))
}

func TestTable_UnknownLanguage(t *testing.T) {
	table, err := New(nil)
	require.NoError(t, err)

	assert.Equal(t, "", table.Color("NotARealLanguage"))
	assert.Equal(t, "", table.Color(""))
}

func TestTable_CaseSensitive(t *testing.T) {
	table, err := New(nil)
	require.NoError(t, err)

	assert.Equal(t, "", table.Color("go"))
}

func TestNew_Overrides(t *testing.T) {
	table, err := New(map[string]string{
		"Go":      "#123456",
		"Hare":    "#9d7424",
		"Fortran": "",
	})

	require.NoError(t, err)
	assert.Equal(t, "#123456", table.Color("Go"))
	assert.Equal(t, "#9d7424", table.Color("Hare"))
	assert.Equal(t, "", table.Color("Fortran"))
}

func TestParse(t *testing.T) {
	t.Run("valid palette", func(t *testing.T) {
		table, err := Parse([]byte("[colors]\nGo = \"#00ADD8\"\n\"C#\" = \"#178600\"\n"))

		require.NoError(t, err)
		assert.Equal(t, []string{"C#", "Go"}, table.Languages())
	})

	t.Run("missing table is empty", func(t *testing.T) {
		table, err := Parse([]byte("title = \"nothing\"\n"))

		require.NoError(t, err)
		assert.Equal(t, 0, table.Len())
	})

	t.Run("invalid toml", func(t *testing.T) {
		_, err := Parse([]byte("[colors\nGo = "))

		assert.Error(t, err)
	})
}

func TestTable_NilSafe(t *testing.T) {
	var table *Table

	assert.Equal(t, "", table.Color("Go"))
}
