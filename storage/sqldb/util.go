package sqldb

import (
	"iter"

	"github.com/jmoiron/sqlx"
)

// SelectIter is like sqlx.Select but returns an iterator of struct values instead
func SelectIter[T any](ex sqlx.Queryer, query string, args ...any) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		rows, err := ex.Queryx(query, args...)
		if err != nil {
			yield(*new(T), err)
			return
		}
		defer rows.Close()

		for rows.Next() {
			var dest T

			err = rows.StructScan(&dest)
			if !yield(dest, err) {
				return
			}
		}

		if err = rows.Err(); err != nil {
			yield(*new(T), err)
			return
		}
	}
}

// Collect collects all the values in seq in a slice, if an error
// is encountered it returns (nil, err) instead.
func Collect[T any](seq iter.Seq2[T, error]) ([]T, error) {
	var res []T
	for t, err := range seq {
		if err != nil {
			return nil, err
		}

		res = append(res, t)
	}
	return res, nil
}

// Map converts each value of seq with fn, errors are passed through as-is
func Map[T, U any](seq iter.Seq2[T, error], fn func(T) U) iter.Seq2[U, error] {
	return func(yield func(U, error) bool) {
		for t, err := range seq {
			var u U
			if err == nil {
				u = fn(t)
			}
			if !yield(u, err) {
				return
			}
		}
	}
}
