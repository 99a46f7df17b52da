package brolz

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEngine_Process_RejectsEmptyInput(t *testing.T) {
	eng := NewEngine(nil)
	_, err := eng.Process(nil)
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestEngine_Process_RejectsInvalidOptions(t *testing.T) {
	eng := NewEngine(&Options{Quality: 99, LgWin: 22})
	_, err := eng.Process([]byte("hello"))
	require.ErrorIs(t, err, ErrInvalidQuality)
}

func TestEngine_Process_EndsWithZeroCopyCommand(t *testing.T) {
	eng := NewEngine(DefaultOptions())
	commands, err := eng.Process([]byte("a short stream of bytes to compress"))
	require.NoError(t, err)
	require.NotEmpty(t, commands)
	last := commands[len(commands)-1]
	require.Zero(t, last.CopyLen)
}

func TestEngine_Process_CommandsCoverTheWholeInput(t *testing.T) {
	eng := NewEngine(DefaultOptions())
	input := bytes.Repeat([]byte("banana bread "), 300)
	commands, err := eng.Process(input)
	require.NoError(t, err)

	var total int
	for _, c := range commands {
		total += c.InsertLen + c.CopyLen
	}
	require.Equal(t, len(input), total)
}

func TestEngine_Process_EveryCopyDistanceIsPositive(t *testing.T) {
	// Dictionary-derived matches legitimately report a distance beyond
	// max_backward_limit, so only positivity is a safe blanket invariant
	// here; see TestDictionaryIndex_LookupFindsASyntheticWord for the
	// dictionary distance's own shape.
	opts := &Options{Quality: 9, LgWin: 12, LgBlock: 0, Mode: ModeGeneric}
	eng := NewEngine(opts)
	input := bytes.Repeat([]byte("repeat-me-often "), 800)

	commands, err := eng.Process(input)
	require.NoError(t, err)

	for _, c := range commands {
		if c.CopyLen > 0 {
			require.Positive(t, c.Distance)
		}
	}
}

func TestEngine_WithLogger_DoesNotPanicWhenSet(t *testing.T) {
	eng := NewEngine(DefaultOptions()).WithLogger(slog.Default())
	_, err := eng.Process([]byte("log this, please"))
	require.NoError(t, err)
}

func TestEngine_DistanceCacheSnapshot_ZeroBeforeProcess(t *testing.T) {
	eng := NewEngine(nil)
	d0, d1, d2, d3 := eng.DistanceCacheSnapshot()
	require.Zero(t, d0)
	require.Zero(t, d1)
	require.Zero(t, d2)
	require.Zero(t, d3)
}

func TestEngine_DistanceCacheSnapshot_PopulatedAfterProcess(t *testing.T) {
	eng := NewEngine(DefaultOptions())
	_, err := eng.Process(bytes.Repeat([]byte("xyzzy "), 200))
	require.NoError(t, err)

	d0, _, _, _ := eng.DistanceCacheSnapshot()
	require.NotZero(t, d0)
}
