package terminal

import "testing"

func TestParseCommand(t *testing.T) {
	tests := []struct {
		in         string
		cmd        Command
		suggestion string
	}{
		{in: "a", cmd: CmdNone},
		{in: "quit", cmd: CmdNone},
		{in: ":quit", cmd: CmdQuit},
		{in: "  :Q ", cmd: CmdQuit},
		{in: ":help", cmd: CmdHelp},
		{in: ":?", cmd: CmdHelp},
		{in: ":qiut", cmd: CmdUnknown, suggestion: "quit"},
		{in: ":hlep", cmd: CmdUnknown, suggestion: "help"},
		{in: ":xyzzy", cmd: CmdUnknown},
		{in: ":", cmd: CmdUnknown},
	}
	for _, tc := range tests {
		cmd, s := ParseCommand(tc.in)
		if cmd != tc.cmd || s != tc.suggestion {
			t.Fatalf("ParseCommand(%q)=(%q,%q) want=(%q,%q)", tc.in, cmd, s, tc.cmd, tc.suggestion)
		}
	}
}
