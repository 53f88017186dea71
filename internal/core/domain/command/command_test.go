package command

import "testing"

func TestBuiltinKind(t *testing.T) {
	tests := []struct {
		name     string
		wantKind Kind
		wantOK   bool
	}{
		{"echo", KindEcho, true},
		{"exit", KindExit, true},
		{"type", KindType, true},
		{"cd", KindCd, true},
		{"pwd", KindPwd, true},
		{"  cd\t", KindCd, true},
		{"ECHO", KindUnresolved, false},
		{"ls", KindUnresolved, false},
		{"", KindUnresolved, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, ok := BuiltinKind(tt.name)
			if kind != tt.wantKind || ok != tt.wantOK {
				t.Errorf("BuiltinKind(%q) = %v, %v; want %v, %v", tt.name, kind, ok, tt.wantKind, tt.wantOK)
			}
			if IsBuiltin(tt.name) != tt.wantOK {
				t.Errorf("IsBuiltin(%q) = %v, want %v", tt.name, !tt.wantOK, tt.wantOK)
			}
		})
	}
}

func TestBuiltinNamesMatchKinds(t *testing.T) {
	if len(BuiltinNames) != len(builtinKinds) {
		t.Fatalf("BuiltinNames has %d entries, builtinKinds has %d", len(BuiltinNames), len(builtinKinds))
	}
	for _, name := range BuiltinNames {
		kind, ok := BuiltinKind(name)
		if !ok || !kind.IsBuiltin() || kind.String() != name {
			t.Errorf("builtin %q maps to %v (ok=%v)", name, kind, ok)
		}
	}
	if KindExecutable.IsBuiltin() || KindUnresolved.IsBuiltin() {
		t.Error("non-builtin kinds report IsBuiltin() = true")
	}
}

func TestCommand_ExitStatus(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
		want int
	}{
		{"no argument", Command{Kind: KindExit, Args: []string{"exit"}}, 0},
		{"numeric argument", Command{Kind: KindExit, Args: []string{"exit", "3"}}, 3},
		{"padded argument", Command{Kind: KindExit, Args: []string{"exit", " 7 "}}, 7},
		{"non-numeric argument", Command{Kind: KindExit, Args: []string{"exit", "soon"}}, 0},
		{"extra arguments ignored", Command{Kind: KindExit, Args: []string{"exit", "2", "9"}}, 2},
		{"other kind", Command{Kind: KindEcho, Args: []string{"echo", "5"}}, 0},
		{"largest status", Command{Kind: KindExit, Args: []string{"exit", "255"}}, 255},
		{"status above 255 wraps", Command{Kind: KindExit, Args: []string{"exit", "300"}}, 44},
		{"status 256 wraps to zero", Command{Kind: KindExit, Args: []string{"exit", "256"}}, 0},
		{"negative status wraps", Command{Kind: KindExit, Args: []string{"exit", "-1"}}, 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cmd.ExitStatus(); got != tt.want {
				t.Errorf("ExitStatus() = %d, want %d", got, tt.want)
			}
		})
	}
}
