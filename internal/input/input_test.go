package input

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tomz197/circles/internal/geom"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    Command
		wantErr error
	}{
		{
			name: "Blank",
			line: "   ",
			want: Command{Kind: CommandNone},
		},
		{
			name: "Comment",
			line: "# tangent case",
			want: Command{Kind: CommandNone},
		},
		{
			name: "Intersect with both radii",
			line: "intersect 0 0 5 3 0 4",
			want: Command{Kind: CommandIntersect, C1: geom.NewCircle(0, 0, 5), C2: geom.NewCircle(3, 0, 4)},
		},
		{
			name: "Intersect congruent",
			line: "i 0 0 5 3 0",
			want: Command{Kind: CommandIntersect, C1: geom.NewCircle(0, 0, 5), C2: geom.NewCircle(3, 0, 5)},
		},
		{
			name: "Comma separated",
			line: "I 0,0,5, 3,0,5",
			want: Command{Kind: CommandIntersect, C1: geom.NewCircle(0, 0, 5), C2: geom.NewCircle(3, 0, 5)},
		},
		{
			name: "Single precision",
			line: "f -1.5 2e1 1 0 0 2",
			want: Command{Kind: CommandIntersect32, C1: geom.NewCircle(-1.5, 20, 1), C2: geom.NewCircle(0, 0, 2)},
		},
		{
			name: "Show epsilon",
			line: "eps",
			want: Command{Kind: CommandEpsilon},
		},
		{
			name: "Set epsilon",
			line: "eps 1e-6",
			want: Command{Kind: CommandEpsilon, Epsilon: 1e-6},
		},
		{
			name: "Quit",
			line: "exit",
			want: Command{Kind: CommandQuit},
		},
		{
			name: "Help",
			line: "?",
			want: Command{Kind: CommandHelp},
		},
		{
			name:    "Unknown",
			line:    "draw 1 2 3",
			wantErr: ErrUnknownCommand,
		},
		{
			name:    "Too few",
			line:    "intersect 0 0 5 3",
			wantErr: ErrArgCount,
		},
		{
			name:    "Too many",
			line:    "intersect 0 0 5 3 0 5 1",
			wantErr: ErrArgCount,
		},
		{
			name:    "Arguments to help",
			line:    "help me",
			wantErr: ErrBadNumber,
		},
		{
			name:    "Bad number",
			line:    "intersect 0 0 five 3 0",
			wantErr: ErrBadNumber,
		},
		{
			name:    "Non-positive epsilon",
			line:    "eps 0",
			wantErr: ErrBadNumber,
		},
		{
			name:    "Infinite epsilon",
			line:    "eps inf",
			wantErr: ErrBadNumber,
		},
		{
			name:    "NaN epsilon",
			line:    "eps nan",
			wantErr: ErrBadNumber,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.line)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParse_ArityMessage(t *testing.T) {
	_, err := Parse("quit now 1")
	require.ErrorIs(t, err, ErrBadNumber)

	_, err = Parse("quit 1")
	require.ErrorContains(t, err, "quit takes no arguments, got 1")

	_, err = Parse("i 1 2")
	require.ErrorContains(t, err, "i takes 5 to 6 arguments, got 2")
}
