//go:build unit

package category_test

import (
	"strings"
	"testing"

	"venue-marketplace/internal/domain/category"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name  string
	input string
	typ   category.Type
	errIs error
}

func TestCategory(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		actual, err := category.NewCategory("  DJ ", category.TypeService)
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "DJ", actual.Name())
		assert.Equal(t, category.TypeService, actual.Type())
	})

	t.Run("名前検証", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "通常の名前OK", input: "Salão de Festas", typ: category.TypeSpace},
			{name: "255文字OK", input: strings.Repeat("á", 255), typ: category.TypeSpace},
			{name: "256文字NG", input: strings.Repeat("á", 256), typ: category.TypeSpace, errIs: category.ErrNameTooLong},
			{name: "空の名前NG", input: "", typ: category.TypeSpace, errIs: category.ErrEmptyName},
			{name: "空白のみNG", input: "   ", typ: category.TypeSpace, errIs: category.ErrEmptyName},
		})
	})

	t.Run("タイプ検証", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "SPACE OK", input: "Chácara", typ: category.TypeSpace},
			{name: "SERVICE OK", input: "Buffet", typ: category.TypeService},
			{name: "EQUIPMENT OK", input: "Tendas", typ: category.TypeEquipment},
			{name: "不明なタイプNG", input: "Tendas", typ: category.Type("VEHICLE"), errIs: category.ErrInvalidType},
			{name: "空のタイプNG", input: "Tendas", typ: category.Type(""), errIs: category.ErrInvalidType},
		})
	})
}

func TestNewType(t *testing.T) {
	tests := []struct {
		in    string
		want  category.Type
		errIs error
	}{
		{in: "SPACE", want: category.TypeSpace},
		{in: " service ", want: category.TypeService},
		{in: "Equipment", want: category.TypeEquipment},
		{in: "venue", errIs: category.ErrInvalidType},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := category.NewType(tt.in)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateSeeds(t *testing.T) {
	t.Run("正規化して順序を保持", func(t *testing.T) {
		got, err := category.ValidateSeeds([]category.Seed{
			{Name: " DJ ", Type: category.TypeService},
			{Name: "Chácara", Type: category.TypeSpace},
		})
		require.NoError(t, err)

		want := []category.Seed{
			{Name: "DJ", Type: category.TypeService},
			{Name: "Chácara", Type: category.TypeSpace},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("seeds mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("小文字のタイプは正規化", func(t *testing.T) {
		got, err := category.ValidateSeeds([]category.Seed{{Name: "Som", Type: " service"}})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, category.TypeService, got[0].Type)
	})

	t.Run("大文字小文字違いの重複NG", func(t *testing.T) {
		_, err := category.ValidateSeeds([]category.Seed{
			{Name: "DJ", Type: category.TypeService},
			{Name: "dj", Type: category.TypeSpace},
		})
		require.ErrorIs(t, err, category.ErrDuplicateSeedName)
	})

	t.Run("無効なタイプNG", func(t *testing.T) {
		_, err := category.ValidateSeeds([]category.Seed{{Name: "DJ", Type: "DJ"}})
		require.ErrorIs(t, err, category.ErrInvalidType)
	})

	t.Run("デフォルトシードは有効", func(t *testing.T) {
		got, err := category.ValidateSeeds(category.DefaultSeeds)
		require.NoError(t, err)
		assert.Len(t, got, len(category.DefaultSeeds))
	})
}

func TestServiceNames(t *testing.T) {
	names := category.ServiceNames(category.DefaultSeeds)

	assert.Contains(t, names, "DJ")
	assert.Contains(t, names, "Som")
	assert.Contains(t, names, "Iluminação")
	assert.NotContains(t, names, "Som e Iluminação")
	assert.NotContains(t, names, "Chácara")
	assert.NotContains(t, names, "Tendas")
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := category.NewCategory(c.input, c.typ)

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
