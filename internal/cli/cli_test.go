package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func runCLI(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(append([]string{"--no-color"}, args...))

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "where", cmd.Use)

	for _, name := range []string{"build", "parse"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	build, _, err := cmd.Find([]string{"build"})
	require.NoError(t, err)
	driverFlag := build.Flags().Lookup("driver")
	require.NotNil(t, driverFlag)
	assert.Equal(t, "sql", driverFlag.DefValue)
}

func TestGolden(t *testing.T) {
	type tc struct {
		args []string
		code int
	}

	tcs := map[string]tc{
		"build_text": {
			args: []string{"build", "age=gte.8&color=in.red,blue"},
		},
		"build_params_postgres": {
			args: []string{"build", "--driver", "postgres", "--params", "age=gte.8", "color=in.red,blue", "name=neq.can't"},
		},
		"build_json_params": {
			args: []string{"--format", "json", "build", "-d", "postgres", "-p", "age=gte.8&color=in.red,blue"},
		},
		"build_mysql": {
			args: []string{"build", "--driver", "mysql", `path=C:\dir`},
		},
		"build_plus_sign": {
			args: []string{"build", "x=gt.+5", "y=gt.%2B5"},
		},
		"parse_text": {
			args: []string{"parse", "name=bob&age=gte.8&color=red,blue"},
		},
		"error_text": {
			args: []string{"build", "x=zz.1"},
			code: ExitFailure,
		},
		"error_json": {
			args: []string{"--format", "json", "parse", "x=zz.1"},
			code: ExitFailure,
		},
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			out, _, err := runCLI(t, tc.args...)
			assert.Equal(t, tc.code, GetExitCode(err))
			g.Assert(t, name, []byte(out))
		})
	}
}

func TestExitCodes(t *testing.T) {
	type tc struct {
		args      []string
		code      int
		errorCode string
	}

	tcs := map[string]tc{
		"success": {
			args: []string{"build", "x=1"},
			code: ExitSuccess,
		},
		"invalid_operator": {
			args:      []string{"build", "x=nope.1"},
			code:      ExitFailure,
			errorCode: ErrCodeInvalidFilter,
		},
		"missing_operator": {
			args:      []string{"build", "--require-opcode", "x=1"},
			code:      ExitFailure,
			errorCode: ErrCodeMissingOperator,
		},
		"missing_operator_parse": {
			args:      []string{"parse", "--require-opcode", "x=eq.1&y=2"},
			code:      ExitFailure,
			errorCode: ErrCodeMissingOperator,
		},
		"empty_filter": {
			args:      []string{"build", ""},
			code:      ExitFailure,
			errorCode: ErrCodeEmptyFilter,
		},
		"unknown_driver": {
			args:      []string{"build", "--driver", "oracle", "x=1"},
			code:      ExitUsage,
			errorCode: ErrCodeUsage,
		},
		"bad_query_string": {
			args:      []string{"build", "x=%zz"},
			code:      ExitUsage,
			errorCode: ErrCodeUsage,
		},
		"empty_column": {
			args:      []string{"parse", "=eq.1"},
			code:      ExitUsage,
			errorCode: ErrCodeUsage,
		},
		"no_arguments": {
			args: []string{"build"},
			code: ExitUsage,
		},
		"unknown_flag": {
			args: []string{"build", "--nope", "x=1"},
			code: ExitUsage,
		},
		"invalid_format": {
			args: []string{"--format", "xml", "build", "x=1"},
			code: ExitUsage,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			_, _, err := runCLI(t, tc.args...)
			assert.Equal(t, tc.code, GetExitCode(err))

			if tc.errorCode != "" {
				require.Error(t, err)
				var exitErr *ExitError
				require.ErrorAs(t, err, &exitErr)
				assert.Equal(t, tc.errorCode, exitErr.Message)
			}
		})
	}
}

func TestParseJSON(t *testing.T) {
	out, _, err := runCLI(t, "--format", "json", "parse", "age=gte.8&color=red,blue")
	require.NoError(t, err)

	var resp struct {
		Status string `json:"status"`
		Data   []struct {
			Column   string `json:"column"`
			Operator string `json:"operator"`
			Criteria any    `json:"criteria"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))

	assert.Equal(t, "ok", resp.Status)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "age", resp.Data[0].Column)
	assert.Equal(t, ">=", resp.Data[0].Operator)
	assert.Equal(t, "8", resp.Data[0].Criteria)
	assert.Equal(t, "IN", resp.Data[1].Operator)
	assert.Equal(t, []any{"red", "blue"}, resp.Data[1].Criteria)
}

func TestParseYAML(t *testing.T) {
	out, _, err := runCLI(t, "--format", "yaml", "parse", "age=gte.8&color=red,blue")
	require.NoError(t, err)

	var resp struct {
		Status string `yaml:"status"`
		Data   []struct {
			Column   string `yaml:"column"`
			Operator string `yaml:"operator"`
			Criteria any    `yaml:"criteria"`
		} `yaml:"data"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &resp))

	assert.Equal(t, "ok", resp.Status)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "age", resp.Data[0].Column)
	assert.Equal(t, ">=", resp.Data[0].Operator)
	assert.Equal(t, "8", resp.Data[0].Criteria)
	assert.Equal(t, []any{"red", "blue"}, resp.Data[1].Criteria)
}

func TestBuildYAMLError(t *testing.T) {
	out, _, err := runCLI(t, "--format", "yaml", "build", "--driver", "oracle", "x=1")
	require.Error(t, err)

	var resp Response
	require.NoError(t, yaml.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeUsage, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, `unknown driver "oracle"`)
}

func TestLogging(t *testing.T) {
	t.Setenv(LogLevelEnv, "")

	_, stderr, err := runCLI(t, "build", "x=1")
	require.NoError(t, err)
	assert.Empty(t, stderr)

	_, stderr, err = runCLI(t, "-v", "build", "x=1")
	require.NoError(t, err)
	assert.Contains(t, stderr, "parsed 1 predicate(s) from 1 argument(s)")
	assert.Contains(t, stderr, "rendered 1 predicate(s) with the sql driver")

	t.Setenv(LogLevelEnv, "INFO")
	_, stderr, err = runCLI(t, "build", "x=1")
	require.NoError(t, err)
	assert.NotContains(t, stderr, "parsed 1 predicate(s)")
	assert.Contains(t, stderr, "rendered 1 predicate(s)")
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(NewExitError(ExitFailure, "x")))
	assert.Equal(t, ExitUsage, GetExitCode(assert.AnError))

	wrapped := WrapExitError(ExitFailure, ErrCodeInvalidFilter, assert.AnError)
	assert.ErrorIs(t, wrapped, assert.AnError)
	assert.Equal(t, "E001: "+assert.AnError.Error(), wrapped.Error())
}
