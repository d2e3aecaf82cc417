package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/algo-vecadd/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	for _, k := range []string{"VECADD_WORKERS", "VECADD_KERNEL", "VECADD_LOG_LEVEL", "VECADD_FORCE_GENERIC"} {
		t.Setenv(k, "")
	}

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append([]string{"--log-level", "error"}, args...))

	err := root.Execute()
	return out.String(), err
}

func TestGenerateThenRun(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "generate", "--dir", dir, "--size", "300", "--seed", "9")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(dir, "input0.raw"))

	result := filepath.Join(dir, "result.raw")
	out, err = execute(t, "run",
		"-i", filepath.Join(dir, "input0.raw")+","+filepath.Join(dir, "input1.raw"),
		"-e", filepath.Join(dir, "output.raw"),
		"-o", result,
		"--workers", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "length: 300")
	assert.Contains(t, out, "solution is correct")

	_, err = os.Stat(result)
	require.NoError(t, err)

	out, err = execute(t, "check", result, filepath.Join(dir, "output.raw"))
	require.NoError(t, err)
	assert.Contains(t, out, `"correct": true`)
}

func TestRunJSON(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.raw")
	b := filepath.Join(dir, "b.raw")
	require.NoError(t, dataset.Export(a, []float64{1, 2, 3}))
	require.NoError(t, dataset.Export(b, []float64{10, 20, 30}))

	out, err := execute(t, "run", "-i", a, "-i", b, "--json", "--kernel", "generic")
	require.NoError(t, err)

	var report struct {
		Length int    `json:"length"`
		Kernel string `json:"kernel"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 3, report.Length)
	assert.Equal(t, "generic", report.Kernel)
}

func TestRunIncorrect(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.raw")
	want := filepath.Join(dir, "want.raw")
	require.NoError(t, dataset.Export(a, []float64{1, 2}))
	require.NoError(t, dataset.Export(want, []float64{1, 2}))

	_, err := execute(t, "run", "-i", a+","+a, "-e", want)
	assert.ErrorIs(t, err, errIncorrect)
}

func TestRunRequiresTwoInputs(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.raw")
	require.NoError(t, dataset.Export(a, []float64{1}))

	_, err := execute(t, "run", "-i", a)
	assert.Error(t, err)

	_, err = execute(t, "run")
	assert.Error(t, err)
}

func TestKernels(t *testing.T) {
	out, err := execute(t, "kernels", "--force-generic")
	require.NoError(t, err)
	assert.Contains(t, out, "NAME")

	var selected []string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasSuffix(strings.TrimSpace(line), "*") {
			selected = append(selected, strings.Fields(line)[0])
		}
	}
	assert.Equal(t, []string{"unrolled"}, selected)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "vecadd.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("compute:\n  kernel: nosuch\n"), 0o644))

	_, err := execute(t, "--config", cfgPath, "kernels")
	assert.Error(t, err)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitList([]string{"a", " ", "b", ""}))
}
