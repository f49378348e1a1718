// orthotok tokenizes text with an orthography profile.
//
// It reads lines from stdin and writes one tokenized line per input line
// to stdout. Profile and rules files are optional; without either, input
// is split into Unicode grapheme clusters.
//
// Usage:
//
//	orthotok [-profile file.prf] [-rules file.rules] [-column label] [-op operation] < input.txt
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/npillmayer/ortho"
	"github.com/npillmayer/ortho/qlc"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pterm/pterm"
)

// tracer writes to trace with key 'ortho'
func tracer() tracing.Trace {
	return tracing.Select("ortho")
}

func main() {
	profilename := flag.String("profile", "", "orthography profile file (.prf)")
	rulesname := flag.String("rules", "", "rewrite rules file (.rules)")
	column := flag.String("column", ortho.ColumnGraphemes, "profile column to remap graphemes to")
	op := flag.String("op", "tokenize",
		"operation: characters | clusters | graphemes | transform | tokenize | rules | ipa")
	tlevel := flag.String("trace", "Error", "trace level: Debug | Info | Error")
	flag.Parse()
	initDisplay()
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		pterm.Error.Printf("invalid trace level: %s\n", *tlevel)
		os.Exit(5)
	}
	tokenizer, err := makeTokenizer(*profilename, *rulesname)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		out, err := tokenizeLine(tokenizer, *op, *column, scanner.Text())
		if err != nil {
			pterm.Error.Println(err)
			os.Exit(2)
		}
		fmt.Println(out)
	}
	if err := scanner.Err(); err != nil {
		pterm.Error.Println(err)
		os.Exit(3)
	}
}

func makeTokenizer(profilename, rulesname string) (*ortho.Tokenizer, error) {
	var profile *ortho.Profile
	var rules *ortho.Ruleset
	if profilename != "" {
		f, err := os.Open(profilename)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		if profile, err = qlc.LoadProfile(profilename, f); err != nil {
			return nil, err
		}
		tracer().Infof("loaded %s", profile.Identifier)
	}
	if rulesname != "" {
		f, err := os.Open(rulesname)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		if rules, err = qlc.LoadRules(f); err != nil {
			return nil, err
		}
		tracer().Infof("loaded %d rewrite rules", rules.Len())
	}
	return ortho.NewTokenizer(profile, rules), nil
}

func tokenizeLine(t *ortho.Tokenizer, op, column, line string) (string, error) {
	switch op {
	case "characters":
		return t.Characters(line), nil
	case "clusters":
		return t.GraphemeClusters(line), nil
	case "graphemes":
		return t.Graphemes(line), nil
	case "transform":
		return t.Transform(line, column)
	case "tokenize":
		return t.Tokenize(line, column)
	case "rules":
		return t.Rules(line), nil
	case "ipa":
		return t.TokenizeIPA(line), nil
	}
	return "", fmt.Errorf("unknown operation %q", op)
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
