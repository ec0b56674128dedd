package spin

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tetris-pc/pcsolve/field"
	"github.com/tetris-pc/pcsolve/movegen"
	"github.com/tetris-pc/pcsolve/piece"
)

func fullField() field.Field {
	row := strings.Repeat("X", piece.FieldWidth)
	rows := make([]string, piece.MaxFieldHeight)
	for i := range rows {
		rows[i] = row
	}
	return field.FromRows(rows)
}

func TestClassifyNoSpinModeAlwaysNone(t *testing.T) {
	factory := piece.NewFactory(piece.SRS)
	m := movegen.Move{Type: piece.T, Rotate: piece.Spawn, X: 4, Y: 4}
	kind := Classify(NoSpin, fullField(), factory, m)
	assert.Equal(t, None, kind)
}

func TestClassifyTSpinOnlyIgnoresNonTPieces(t *testing.T) {
	factory := piece.NewFactory(piece.SRS)
	m := movegen.Move{Type: piece.O, Rotate: piece.Spawn, X: 4, Y: 4}
	kind := Classify(TSpinOnly, fullField(), factory, m)
	assert.Equal(t, None, kind)
}

func TestClassifySurroundedNonTPieceIsAlwaysFull(t *testing.T) {
	factory := piece.NewFactory(piece.SRS)
	m := movegen.Move{Type: piece.O, Rotate: piece.Spawn, X: 4, Y: 4}
	kind := Classify(AllSpins, fullField(), factory, m)
	assert.Equal(t, Full, kind)
}

func TestClassifySurroundedTPieceNeedsBothFrontCorners(t *testing.T) {
	factory := piece.NewFactory(piece.SRS)
	m := movegen.Move{Type: piece.T, Rotate: piece.Spawn, X: 4, Y: 4}
	kind := Classify(TSpinOnly, fullField(), factory, m)
	assert.Equal(t, Full, kind, "every corner occupied implies both front corners occupied")
}

func TestAttackZeroWhenNoLinesCleared(t *testing.T) {
	factory := piece.NewFactory(piece.SRS)
	m := movegen.Move{Type: piece.O, Rotate: piece.Spawn, X: 4, Y: 4}
	assert.Equal(t, 0, Attack(AllSpins, fullField(), factory, m, 0, false))
}

func TestAttackCreditsBackToBackBonus(t *testing.T) {
	factory := piece.NewFactory(piece.SRS)
	m := movegen.Move{Type: piece.O, Rotate: piece.Spawn, X: 4, Y: 4}
	withoutB2B := Attack(AllSpins, fullField(), factory, m, 3, false)
	withB2B := Attack(AllSpins, fullField(), factory, m, 3, true)
	assert.Equal(t, withoutB2B+1, withB2B)
}
