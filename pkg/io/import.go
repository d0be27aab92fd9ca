package io

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	fgerrors "github.com/matzehuels/factorygraph/pkg/errors"
	"github.com/matzehuels/factorygraph/pkg/recipe"
)

// ReadClasses decodes the classes table from r.
//
// The input is CSV with at least two columns, item class and display name.
// The first row is a header and is discarded; further columns are ignored and
// surrounding whitespace is trimmed. A row with fewer than two fields fails
// with an INVALID_FORMAT error naming its line.
//
// Rows are returned in file order, duplicates included; [recipe.Precompute]
// decides how repeated classes are merged. ReadClasses does not close r.
func ReadClasses(r io.Reader) ([]recipe.ClassRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fgerrors.Wrap(fgerrors.ErrCodeInvalidFormat, err, "decode classes header")
	}

	var rows []recipe.ClassRow
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, fgerrors.Wrap(fgerrors.ErrCodeInvalidFormat, err, "decode classes")
		}
		if len(rec) < 2 {
			line, _ := cr.FieldPos(0)
			return nil, fgerrors.New(fgerrors.ErrCodeInvalidFormat,
				"line %d: want class and name, got %d field(s)", line, len(rec))
		}
		rows = append(rows, recipe.ClassRow{
			ID:   strings.TrimSpace(rec[0]),
			Name: strings.TrimSpace(rec[1]),
		})
	}
}

// ImportClasses reads the classes CSV file at path.
func ImportClasses(path string) ([]recipe.ClassRow, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := ReadClasses(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

// ReadRecipes decodes the recipe export from r: a JSON object mapping record
// IDs to recipe records. Key order is preserved in the returned table.
// ReadRecipes does not close r.
func ReadRecipes(r io.Reader) (*recipe.RecipeTable, error) {
	table := recipe.NewRecipeTable()
	if err := json.NewDecoder(r).Decode(table); err != nil {
		return nil, fgerrors.Wrap(fgerrors.ErrCodeInvalidFormat, err, "decode recipes")
	}
	return table, nil
}

// ImportRecipes reads the recipe JSON file at path.
func ImportRecipes(path string) (*recipe.RecipeTable, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	table, err := ReadRecipes(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

func open(path string) (*os.File, error) {
	if err := fgerrors.ValidateDataPath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fgerrors.Wrap(fgerrors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, nil
}
