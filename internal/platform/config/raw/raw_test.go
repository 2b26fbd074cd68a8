package raw

import "testing"

func TestConfGet(t *testing.T) {
	t.Setenv("LOG_LEVEL", " info ")
	t.Setenv("LOG_FILE_PATH", " /var/log/scotuspredict.log ")

	root := New()
	file := root.Prefix("LOG_").Prefix("FILE_")

	tests := []struct {
		name string
		conf Conf
		key  string
		def  string
		want string
	}{
		{name: "root hit", conf: root, key: "LOG_LEVEL", def: "x", want: "info"},
		{name: "nested prefix hit", conf: file, key: "PATH", def: "x", want: "/var/log/scotuspredict.log"},
		{name: "missing returns default", conf: file, key: "MISSING", def: "defv", want: "defv"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.conf.Get(tt.key, tt.def); got != tt.want {
				t.Fatalf("Get(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestConfGetBool(t *testing.T) {
	c := New().Prefix("LOG_")
	t.Setenv("LOG_T1", "true")
	t.Setenv("LOG_T2", "1")
	t.Setenv("LOG_T3", "YES")
	t.Setenv("LOG_F1", "false")
	t.Setenv("LOG_F2", "nope")
	t.Setenv("LOG_WS", "   true   ")

	tests := []struct {
		key  string
		def  bool
		want bool
	}{
		{"T1", false, true},
		{"T2", false, true},
		{"T3", false, true},
		{"F1", true, false},
		{"F2", true, false},
		{"WS", false, true},
		{"MISSING", true, true},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := c.GetBool(tt.key, tt.def); got != tt.want {
				t.Fatalf("GetBool(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestConfGetInt(t *testing.T) {
	c := New().Prefix("LOG_FILE_")
	t.Setenv("LOG_FILE_MAX_SIZE_MB", "42")
	t.Setenv("LOG_FILE_WS", "  7  ")
	t.Setenv("LOG_FILE_NONNUM", "12x")
	t.Setenv("LOG_FILE_NEG", "-5")

	tests := []struct {
		key  string
		def  int
		want int
	}{
		{"MAX_SIZE_MB", 0, 42},
		{"WS", 1, 7},
		{"NONNUM", 9, 9},
		{"NEG", 3, 3},
		{"MISSING", 11, 11},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := c.GetInt(tt.key, tt.def); got != tt.want {
				t.Fatalf("GetInt(%q) = %d, want %d", tt.key, got, tt.want)
			}
		})
	}
}
