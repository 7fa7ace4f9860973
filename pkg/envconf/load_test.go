package envconf

import (
	"errors"
	"testing"
	"time"
)

func TestLoad_Table(t *testing.T) {
	type nested struct {
		Inner string `env:"ENVCONF_TEST_INNER"`
	}

	type cfg struct {
		Str      string        `env:"ENVCONF_TEST_STR"`
		Num      int           `env:"ENVCONF_TEST_NUM"`
		UNum     uint16        `env:"ENVCONF_TEST_UNUM"`
		Flag     bool          `env:"ENVCONF_TEST_FLAG" envDefault:"true"`
		Wait     time.Duration `env:"ENVCONF_TEST_WAIT" envDefault:"15s"`
		Nested   nested
		Untagged string
	}

	tests := []struct {
		name    string
		env     map[string]string
		want    cfg
		wantErr error
	}{
		{
			name: "all_set",
			env: map[string]string{
				"ENVCONF_TEST_STR":   "hello",
				"ENVCONF_TEST_NUM":   "-3",
				"ENVCONF_TEST_UNUM":  "8080",
				"ENVCONF_TEST_FLAG":  "false",
				"ENVCONF_TEST_WAIT":  "2m",
				"ENVCONF_TEST_INNER": "deep",
			},
			want: cfg{
				Str:    "hello",
				Num:    -3,
				UNum:   8080,
				Flag:   false,
				Wait:   2 * time.Minute,
				Nested: nested{Inner: "deep"},
			},
		},
		{
			name: "defaults_fill_unset",
			env: map[string]string{
				"ENVCONF_TEST_STR":   "x",
				"ENVCONF_TEST_NUM":   "1",
				"ENVCONF_TEST_UNUM":  "1",
				"ENVCONF_TEST_INNER": "y",
			},
			want: cfg{
				Str:    "x",
				Num:    1,
				UNum:   1,
				Flag:   true,
				Wait:   15 * time.Second,
				Nested: nested{Inner: "y"},
			},
		},
		{
			name: "missing_required",
			env: map[string]string{
				"ENVCONF_TEST_NUM":   "1",
				"ENVCONF_TEST_UNUM":  "1",
				"ENVCONF_TEST_INNER": "y",
			},
			wantErr: ErrMissingRequired,
		},
		{
			name: "required_in_nested_struct",
			env: map[string]string{
				"ENVCONF_TEST_STR":  "x",
				"ENVCONF_TEST_NUM":  "1",
				"ENVCONF_TEST_UNUM": "1",
			},
			wantErr: ErrMissingRequired,
		},
		{
			name: "bad_int",
			env: map[string]string{
				"ENVCONF_TEST_STR":   "x",
				"ENVCONF_TEST_NUM":   "not-a-number",
				"ENVCONF_TEST_UNUM":  "1",
				"ENVCONF_TEST_INNER": "y",
			},
			wantErr: errors.New("any"), // any parse error
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			got := cfg{}
			err := Load(&got)

			if tt.wantErr != nil {
				if err == nil {
					t.Fatalf("want error, got nil")
				}
				if errors.Is(tt.wantErr, ErrMissingRequired) && !errors.Is(err, ErrMissingRequired) {
					t.Fatalf("want ErrMissingRequired, got %v", err)
				}

				return
			}

			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if got != tt.want {
				t.Fatalf("want %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestLoad_RejectsNonStruct(t *testing.T) {
	err := Load(nil)
	if err == nil {
		t.Fatal("want error for nil destination")
	}

	var s string
	err = Load(&s)
	if err == nil {
		t.Fatal("want error for non-struct destination")
	}
}
