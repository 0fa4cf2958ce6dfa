package gateway

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseListParams(t *testing.T) {
	p := ParseListParams("  Ana ", "name", "DESC", "3")
	require.Equal(t, "ana", p.Query)
	require.Equal(t, "name", p.SortBy)
	require.True(t, p.Desc)
	require.Equal(t, 3, p.Page)
	require.Equal(t, DefaultPerPage, p.PerPage)

	p = ParseListParams("", "", "", "abc")
	require.Equal(t, 1, p.Page)
	require.False(t, p.Desc)
}

func TestFilter(t *testing.T) {
	rows := []string{"Corte Feminino", "Coloração", "Manicure"}
	index := func(s string) []string { return []string{s} }

	require.Len(t, Filter(rows, "cor", index), 2)
	require.Len(t, Filter(rows, "manicure", index), 1)
	require.Len(t, Filter(rows, "barba", index), 0)
	require.Len(t, Filter(rows, "", index), 3)
}

func TestSortBy(t *testing.T) {
	rows := []int{3, 1, 2}
	less := func(a, b int) bool { return a < b }

	SortBy(rows, less, false)
	require.Equal(t, []int{1, 2, 3}, rows)

	SortBy(rows, less, true)
	require.Equal(t, []int{3, 2, 1}, rows)

	// coluna fora do allow-list: nada muda
	SortBy(rows, nil, false)
	require.Equal(t, []int{3, 2, 1}, rows)
}

func TestPaginate(t *testing.T) {
	rows := make([]int, 23)
	for i := range rows {
		rows[i] = i
	}

	t.Run("total de páginas é ceil(N/P)", func(t *testing.T) {
		_, totalPages := Paginate(rows, 1, 10)
		require.Equal(t, 3, totalPages)
	})

	t.Run("última página é parcial", func(t *testing.T) {
		page, _ := Paginate(rows, 3, 10)
		require.Len(t, page, 3)
		require.Equal(t, 20, page[0])
	})

	t.Run("página fora do intervalo devolve vazio", func(t *testing.T) {
		page, totalPages := Paginate(rows, 9, 10)
		require.Empty(t, page)
		require.Equal(t, 3, totalPages)
	})

	t.Run("as páginas cobrem o conjunto sem sobreposição", func(t *testing.T) {
		seen := map[int]bool{}
		for p := 1; p <= 3; p++ {
			page, _ := Paginate(rows, p, 10)
			for _, v := range page {
				require.False(t, seen[v], "item repetido na página "+strconv.Itoa(p))
				seen[v] = true
			}
		}
		require.Len(t, seen, len(rows))
	})
}
