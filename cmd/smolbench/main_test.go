package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    Config
		wantErr bool
	}{
		{
			name: "defaults",
			want: Config{Format: "text", Parallel: 1, BenchTime: "1s"},
		},
		{
			name: "all flags",
			args: []string{"-cases", "pop", "-format", "json", "-o", "out.json", "-parallel", "3", "-benchtime", "10x", "-v"},
			want: Config{Cases: "pop", Format: "json", Output: "out.json", Parallel: 3, BenchTime: "10x", Verbose: true},
		},
		{name: "bad format", args: []string{"-format", "xml"}, wantErr: true},
		{name: "bad parallel", args: []string{"-parallel", "0"}, wantErr: true},
		{name: "unknown flag", args: []string{"-nope"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFlags(tt.args, io.Discard)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelectCases(t *testing.T) {
	all := DefaultCases()

	got, err := SelectCases(all, "")
	require.NoError(t, err)
	assert.Len(t, got, len(all))

	got, err = SelectCases(all, "pop, push_large")
	require.NoError(t, err)
	var names []string
	for _, c := range got {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"push_large_small_vec", "push_large_std_vec", "pop_small_vec", "pop_std_vec"}, names)

	_, err = SelectCases(all, "sort")
	assert.Error(t, err)
}

func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, DefaultCases()[:1], 1, NoopLogger())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWriteResults(t *testing.T) {
	results := []Result{
		{Name: "push_small_vec", Iterations: 100, NsPerOp: 12, HeapBuffers: 0},
		{Name: "push_std_vec", Iterations: 50, NsPerOp: 40, AllocsPerOp: 3, BytesPerOp: 120},
	}

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeResults(&buf, "json", results))

		var got []Result
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, results, got)
	})

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeResults(&buf, "text", results))
		out := buf.String()
		assert.Contains(t, out, "push_small_vec")
		assert.Contains(t, out, "heap buffers/op")
	})
}

func TestRun_Command(t *testing.T) {
	if testing.Short() {
		t.Skip("runs real benchmarks")
	}

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-cases", "push_small_vec,push_std_vec", "-format", "json", "-benchtime", "100x"}, &stdout, &stderr)
	require.NoError(t, err)

	var got []Result
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "push_small_vec", got[0].Name)
	assert.Zero(t, got[0].HeapBuffers, "four pushes stay inline")
	assert.Contains(t, stderr.String(), `"msg":"run completed"`, "json output logs json")
}

func TestRun_TextLogs(t *testing.T) {
	if testing.Short() {
		t.Skip("runs real benchmarks")
	}

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-cases", "pop_small_vec", "-benchtime", "10x"}, &stdout, &stderr)
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), "pop_small_vec")
	assert.Contains(t, stderr.String(), `msg="run completed"`)
}
