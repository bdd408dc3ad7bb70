// Package repl implements the interactive loop: the sig(N)> prompt,
// environment-threading across inputs, and recovery from a faulting
// input that discards it and keeps the prior environment.
package repl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/RobinBoers/signo"
	"github.com/RobinBoers/signo/interp"
	"github.com/RobinBoers/signo/token"
	"github.com/chzyer/readline"
)

// Run runs the REPL until EOF or an unrecoverable readline error.
func Run() {
	env := signo.NewEnvironment()

	n := 1
	prompt := func() string { return fmt.Sprintf("sig(%d)> ", n) }

	rl, err := readline.New(prompt())
	if err != nil {
		panic(err)
	}
	defer rl.Close()
	contPrompt := strings.Repeat(" ", len(prompt()))

	var buf []byte
	var loopErr error
	for {
		var line []byte
		line, loopErr = rl.ReadSlice()
		if loopErr == readline.ErrInterrupt {
			buf = nil
			rl.SetPrompt(prompt())
			continue
		}
		if loopErr != nil {
			break
		}

		if len(buf) != 0 {
			buf = append(buf, '\n')
			buf = append(buf, line...)
		} else {
			buf = append(buf, line...)
		}
		if len(strings.TrimSpace(string(buf))) == 0 {
			buf = nil
			continue
		}

		source := string(buf)
		exprs, perr := signo.Parse(source, token.NoFile)
		if perr != nil {
			if unclosed, ok := perr.(*interp.Error); ok && unclosed.Kind == interp.ParseErrorKind && strings.Contains(unclosed.Message, "unclosed list") {
				rl.SetPrompt(contPrompt)
				continue
			}
			errln(perr)
			buf = nil
			rl.SetPrompt(prompt())
			n++
			continue
		}

		buf = nil
		rl.SetPrompt(prompt())
		n++

		result, newEnv, err := interp.Load(exprs, env)
		if err != nil {
			errln(err)
			continue
		}
		env = newEnv
		if !result.IsHidden() {
			fmt.Println(result)
		}
	}
	if loopErr != io.EOF {
		errln(loopErr)
	}
}

func errln(v ...interface{}) {
	fmt.Fprintln(os.Stderr, v...)
}
