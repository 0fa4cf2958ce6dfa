package gateway

import (
	"sort"
	"strconv"
	"strings"
)

const DefaultPerPage = 10

// ListParams reproduz o padrão listar-buscar-ordenar-paginar das telas de
// cadastro: o conjunto completo é carregado e o recorte acontece em memória.
type ListParams struct {
	Query   string
	SortBy  string
	Desc    bool
	Page    int
	PerPage int
}

func ParseListParams(query, sortBy, dir, page string) ListParams {
	p := ListParams{
		Query:   strings.ToLower(strings.TrimSpace(query)),
		SortBy:  strings.TrimSpace(sortBy),
		Desc:    strings.EqualFold(dir, "desc"),
		Page:    1,
		PerPage: DefaultPerPage,
	}
	if n, err := strconv.Atoi(page); err == nil && n > 0 {
		p.Page = n
	}
	return p
}

// Filter mantém as linhas cujo índice textual contém a substring buscada.
func Filter[T any](rows []T, query string, index func(T) []string) []T {
	if query == "" {
		return rows
	}
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		for _, field := range index(row) {
			if strings.Contains(strings.ToLower(field), query) {
				out = append(out, row)
				break
			}
		}
	}
	return out
}

// SortBy ordena de forma estável pela coluna escolhida; colunas fora do
// allow-list do handler são ignoradas (less == nil).
func SortBy[T any](rows []T, less func(a, b T) bool, desc bool) {
	if less == nil {
		return
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if desc {
			return less(rows[j], rows[i])
		}
		return less(rows[i], rows[j])
	})
}

// Paginate devolve a página pedida e o total de páginas (ceil(N/P)).
// Página fora do intervalo devolve recorte vazio, nunca erro.
func Paginate[T any](rows []T, page, perPage int) ([]T, int) {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	if page <= 0 {
		page = 1
	}

	totalPages := (len(rows) + perPage - 1) / perPage

	start := (page - 1) * perPage
	if start >= len(rows) {
		return []T{}, totalPages
	}
	end := start + perPage
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end], totalPages
}
