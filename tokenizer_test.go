package ortho

import (
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// Test input reads "Màttís List", accents spelled as base + combining
// mark, the form the engine normalizes to.
const testInput = "Ma\u0300tti\u0301s List"

// --- Test Suite Preparation ------------------------------------------------

type TokenizerTestEnviron struct {
	suite.Suite
	profile *Profile
	rules   *Ruleset
}

// listen for 'go test' command --> run test methods
func TestTokenizerFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ortho")
	defer teardown()
	suite.Run(t, new(TokenizerTestEnviron))
}

// run once, before test suite methods
func (env *TokenizerTestEnviron) SetupSuite() {
	tracing.Select("ortho").SetTraceLevel(tracing.LevelError)
	profile, err := LoadProfile("test", &sliceProfileReader{
		columns: []string{"graphemes", "ipa", "funny"},
		rows: [][]string{
			{"a\u0300", "a", "e"},  // à
			{"tt", "t\u02d0", "l"}, // tt => tː
			{"i\u0301", "i", "n"},  // í
			{"s", "s", "a"},
			{"M", "m", "J"},
		},
	})
	env.Require().NoError(err, "expected test profile to load")
	env.profile = profile
	rules, err := LoadRules(&sliceRuleReader{rules: [][2]string{{"tt", "t"}}})
	env.Require().NoError(err, "expected test rules to load")
	env.rules = rules
}

func (env *TokenizerTestEnviron) tokenizer() *Tokenizer {
	return NewTokenizer(env.profile, env.rules)
}

// --- Tests -----------------------------------------------------------------

func (env *TokenizerTestEnviron) TestCharacters() {
	result := env.tokenizer().Characters(testInput)
	env.Equal("M a \u0300 t t i \u0301 s # L i s t", result,
		"expected one token per code point")
}

func (env *TokenizerTestEnviron) TestGraphemeClusters() {
	result := env.tokenizer().GraphemeClusters(testInput)
	env.Equal("M a\u0300 t t i\u0301 s # L i s t", result,
		"expected combining marks attached to their bases")
}

func (env *TokenizerTestEnviron) TestGraphemes() {
	result := env.tokenizer().Graphemes(testInput)
	env.Equal("M a\u0300 tt i\u0301 s # ? ? s ?", result,
		"expected profile segmentation with character fallback for 'List'")
}

func (env *TokenizerTestEnviron) TestGraphemesWithoutProfile() {
	tokenizer := NewTokenizer(nil, nil)
	result := tokenizer.Graphemes(testInput)
	env.Equal(tokenizer.GraphemeClusters(testInput), result,
		"expected grapheme cluster fallback without a profile")
}

func (env *TokenizerTestEnviron) TestTransformDefaultColumn() {
	tokenizer := env.tokenizer()
	result, err := tokenizer.Transform(testInput, ColumnGraphemes)
	env.Require().NoError(err)
	env.Equal(tokenizer.Graphemes(testInput), result,
		"expected the graphemes column to yield plain segmentation")
}

func (env *TokenizerTestEnviron) TestTransformIPA() {
	result, err := env.tokenizer().Transform(testInput, "ipa")
	env.Require().NoError(err)
	env.Equal("m a t\u02d0 i s # ? ? s ?", result)
}

func (env *TokenizerTestEnviron) TestTransformFunny() {
	result, err := env.tokenizer().Transform(testInput, "funny")
	env.Require().NoError(err)
	env.Equal("J e l n a # ? ? a ?", result)
}

func (env *TokenizerTestEnviron) TestTransformUnknownColumn() {
	tokenizer := env.tokenizer()
	result, err := tokenizer.Transform(testInput, "nosuchcolumn")
	env.Require().NoError(err)
	env.Equal(tokenizer.Graphemes(testInput), result,
		"expected unknown columns to degrade to plain segmentation")
}

func (env *TokenizerTestEnviron) TestTransformWithoutProfile() {
	_, err := NewTokenizer(nil, nil).Transform("abc", "ipa")
	env.Require().ErrorIs(err, ErrNoProfile)
}

func (env *TokenizerTestEnviron) TestTransformNullDropsToken() {
	profile, err := LoadProfile("null", &sliceProfileReader{
		columns: []string{"graphemes", "ipa"},
		rows:    [][]string{{"b", "b"}, {"o", "NULL"}},
	})
	env.Require().NoError(err)
	result, err := NewTokenizer(profile, nil).Transform("bo", "ipa")
	env.Require().NoError(err)
	env.Equal("b", result, "expected the NULL-mapped token to be dropped")
}

func (env *TokenizerTestEnviron) TestTransformRules() {
	result, err := env.tokenizer().TransformRules(testInput)
	env.Require().NoError(err)
	env.Equal("M a\u0300 t i\u0301 s # ? ? s ?", result,
		"expected the tt->t rule applied to the segmentation")
}

func (env *TokenizerTestEnviron) TestTokenizeProfileAndRules() {
	result, err := env.tokenizer().Tokenize(testInput, ColumnGraphemes)
	env.Require().NoError(err)
	env.Equal("M a\u0300 t i\u0301 s # ? ? s ?", result)
}

func (env *TokenizerTestEnviron) TestTokenizeNeither() {
	tokenizer := NewTokenizer(nil, nil)
	result, err := tokenizer.Tokenize(testInput, ColumnGraphemes)
	env.Require().NoError(err)
	env.Equal(tokenizer.GraphemeClusters(testInput), result)
}

func (env *TokenizerTestEnviron) TestTokenizeProfileOnly() {
	result, err := NewTokenizer(env.profile, nil).Tokenize(testInput, "ipa")
	env.Require().NoError(err)
	env.Equal("m a t\u02d0 i s # ? ? s ?", result)
}

func (env *TokenizerTestEnviron) TestTokenizeRulesOnly() {
	rules, err := LoadRules(&sliceRuleReader{rules: [][2]string{{"(t) (t)", "${1}${1}"}}})
	env.Require().NoError(err)
	result, err := NewTokenizer(nil, rules).Tokenize(testInput, ColumnGraphemes)
	env.Require().NoError(err)
	env.Equal("M a\u0300 tt i\u0301 s # L i s t", result,
		"expected the rules applied to grapheme cluster output")
}

func (env *TokenizerTestEnviron) TestRulesWithoutRulesIsNoop() {
	result := NewTokenizer(env.profile, nil).Rules("abc")
	env.Equal("abc", result)
}
