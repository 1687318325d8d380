package spacing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/yacobolo/jsxspace/internal/jsx"
)

func newTestCompiler(t *testing.T, opts ...Option) *Compiler {
	t.Helper()
	log := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
	c, err := NewCompiler(DefaultOptions(), log, opts...)
	require.NoError(t, err)
	return c
}

func compile(t *testing.T, c *Compiler, src string) *Result {
	t.Helper()
	doc, err := jsx.Parse("test.jsx", src)
	require.NoError(t, err)
	result, err := c.Compile(doc)
	require.NoError(t, err)
	return result
}

func TestCompile_LiteralNumber(t *testing.T) {
	c := newTestCompiler(t)

	result := compile(t, c, `<div mb={2} />`)
	assert.Equal(t, `<div className="mb-2" />`, result.Source)
	assert.Equal(t, 1, result.Rewritten)
	assert.Equal(t, 1, result.Attributes)

	assert.Equal(t, []Bucket{{
		Key:   DefaultBreakpoint,
		Rules: []Rule{{Class: "mb-2", Declaration: "margin-bottom: 8rem;"}},
	}}, c.Rules().Drain())
}

func TestCompile_ResponsiveArrayWithDynamicEntries(t *testing.T) {
	c := newTestCompiler(t)

	result := compile(t, c, `<div mb={[1, 2, x, x ? 1 : 2]} />`)
	assert.Equal(t, "<div className={`mb-md-${x} mb-lg-${x ? 1 : 2} mb-1 mb-xs-2`} />", result.Source)

	assert.Equal(t, []Bucket{
		{Key: DefaultBreakpoint, Rules: []Rule{{Class: "mb-1", Declaration: "margin-bottom: 4rem;"}}},
		{Key: "xs", Rules: []Rule{{Class: "mb-xs-2", Declaration: "margin-bottom: 8rem;"}}},
	}, c.Rules().Drain())
}

func TestCompile_NoShorthandLeavesElementUnchanged(t *testing.T) {
	c := newTestCompiler(t)

	src := `<div id="a" data-m={1}><span>{m}</span></div>`
	result := compile(t, c, src)
	assert.Equal(t, src, result.Source)
	assert.Equal(t, 0, result.Rewritten)
	assert.Equal(t, 0, c.Rules().Len())
}

func TestCompile_LiteralOnlyRoundTrip(t *testing.T) {
	c := newTestCompiler(t)

	src := "<div\n  mt={4}\n  id=\"box\"\n  px=\"1\"\n  ml=\"auto\"\n>hi</div>"
	result := compile(t, c, src)
	assert.Equal(t, "<div\n  id=\"box\" className=\"mt-4 px-1 ml-auto\"\n>hi</div>", result.Source)

	doc, err := jsx.Parse("out.jsx", result.Source)
	require.NoError(t, err)
	el := doc.Elements[0]
	for _, attr := range el.Attributes {
		_, shorthand := LookupProperty(attr.Name)
		assert.False(t, shorthand, "attribute %s survived", attr.Name)
	}
	require.NotNil(t, el.Attribute("className"))
	assert.Equal(t, "mt-4 px-1 ml-auto", el.Attribute("className").Value)

	css, err := Stylesheet(c.Rules(), c.Options())
	require.NoError(t, err)
	assert.Equal(t, ".mt-4{margin-top:16rem;}.px-1{padding-left:4rem;padding-right:4rem;}.ml-auto{margin-left:auto;}", css)
}

func TestCompile_OriginalFixture(t *testing.T) {
	c := newTestCompiler(t)

	result := compile(t, c, `<div mb={[1, 2, mb, mb ? 1 : 2]} ml="5" mr={mb} mt={4} pt={[1,3]} pb={[2, height]} />`)
	assert.Equal(t,
		"<div className={`mb-md-${mb} mb-lg-${mb ? 1 : 2} mr-${mb} pb-xs-${height} mb-1 mb-xs-2 ml-5 mt-4 pt-1 pt-xs-3 pb-2`} />",
		result.Source)

	css, err := Stylesheet(c.Rules(), c.Options())
	require.NoError(t, err)
	assert.Equal(t,
		".mb-1{margin-bottom:4rem;}.ml-5{margin-left:20rem;}.mt-4{margin-top:16rem;}.pt-1{padding-top:4rem;}.pb-2{padding-bottom:8rem;}"+
			"@media (min-width:36rem){.mb-xs-2{margin-bottom:8rem;}.pt-xs-3{padding-top:12rem;}}",
		css)
}

func TestCompile_MergesExistingClassName(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "string value",
			src:  `<div className="card" mb={2} />`,
			want: `<div className="card mb-2" />`,
		},
		{
			name: "expression value",
			src:  `<div className={styles.card} mb={2} mt={x} />`,
			want: "<div className={`mt-${x} ${styles.card} mb-2`} />",
		},
		{
			name: "string with backtick",
			src:  "<div className='a`b' m={gap} />",
			want: "<div className={`m-${gap} a\\`b`} />",
		},
		{
			name: "generated class already listed",
			src:  `<div className="mb-2  foo" mb={2} mt={1} />`,
			want: `<div className="mb-2 foo mt-1" />`,
		},
		{
			name: "string with double quote",
			src:  `<div className='say"hi' m={1} />`,
			want: `<div className='say"hi m-1' />`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCompiler(t)
			result := compile(t, c, tt.src)
			assert.Equal(t, tt.want, result.Source)
		})
	}
}

func TestCompile_IgnoresCommentsInValues(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "line comment after identifier",
			src:  "<div mb={x // note\n} />",
			want: "<div className={`mb-${x}`} />",
		},
		{
			name: "line comment inside array",
			src:  "<div mb={[x, // a\n y]} />",
			want: "<div className={`mb-${x} mb-xs-${y}`} />",
		},
		{
			name: "block comment before literal",
			src:  "<div mb={/* gap */ 2} />",
			want: `<div className="mb-2" />`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCompiler(t)
			result := compile(t, c, tt.src)
			assert.Equal(t, tt.want, result.Source)
		})
	}
}

func TestCompile_ValuesDifferingInCaseGetDistinctClasses(t *testing.T) {
	c := newTestCompiler(t)

	result := compile(t, c, `<><div mb="var(--Gap)" /><p mb="var(--gap)" /></>`)
	assert.Equal(t, `<><div className="mb-var-gap--a200c037" /><p className="mb-var-gap--21d47417" /></>`, result.Source)
	assert.Equal(t, 2, c.Rules().RuleCount(DefaultBreakpoint))

	css, err := Stylesheet(c.Rules(), c.Options())
	require.NoError(t, err)
	assert.Contains(t, css, ".mb-var-gap--a200c037{margin-bottom:var(--Gap);}")
	assert.Contains(t, css, ".mb-var-gap--21d47417{margin-bottom:var(--gap);}")
}

func TestCompile_CustomClassAttribute(t *testing.T) {
	c := newTestCompiler(t, WithClassAttribute("class"))
	assert.Equal(t, "class", c.ClassAttribute())

	result := compile(t, c, `<div class="x" p={1} />`)
	assert.Equal(t, `<div class="x p-1" />`, result.Source)
}

func TestCompile_NestedElementsAndRepeatedClasses(t *testing.T) {
	c := newTestCompiler(t)

	src := `const App = () => (
  <main p={2}>
    {items.map(i => <Row key={i} mb={2} />)}
    <footer mb={2} />
  </main>
);`
	result := compile(t, c, src)
	assert.Equal(t, `const App = () => (
  <main className="p-2">
    {items.map(i => <Row key={i} className="mb-2" />)}
    <footer className="mb-2" />
  </main>
);`, result.Source)
	assert.Equal(t, 3, result.Elements)
	assert.Equal(t, 3, result.Rewritten)
	assert.Equal(t, 2, c.Rules().RuleCount(DefaultBreakpoint))
}

func TestCompile_AccumulatesAcrossDocuments(t *testing.T) {
	c := newTestCompiler(t)

	compile(t, c, `<a m={1} />`)
	compile(t, c, `<b m={1} p={[0, 1]} />`)

	assert.Equal(t, 2, c.Rules().RuleCount(DefaultBreakpoint))
	assert.Equal(t, 1, c.Rules().RuleCount("xs"))
}

func TestCompile_Errors(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		target interface{}
		msg    string
	}{
		{
			name:   "member expression",
			src:    `<div mb={theme.space} />`,
			target: new(*UnsupportedValueError),
			msg:    `test.jsx:1:10: unsupported value shape member expression for shorthand attribute "mb"`,
		},
		{
			name:   "nested array",
			src:    `<div mb={[1, [2]]} />`,
			target: new(*UnsupportedValueError),
			msg:    "nested array",
		},
		{
			name:   "boolean attribute",
			src:    `<div m />`,
			target: new(*UnsupportedValueError),
			msg:    "boolean attribute",
		},
		{
			name:   "empty string",
			src:    `<div m="" />`,
			target: new(*UnsupportedValueError),
			msg:    "empty string",
		},
		{
			name:   "invalid expression",
			src:    `<div m={1 +} />`,
			target: new(*UnsupportedValueError),
			msg:    "invalid expression",
		},
		{
			name:   "too many values",
			src:    `<div p={[1, 2, 3, 4, 5]} />`,
			target: new(*TooManyValuesError),
			msg:    `has 5 responsive values but only 3 breakpoints are configured`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCompiler(t)
			doc, err := jsx.Parse("test.jsx", tt.src)
			require.NoError(t, err)

			_, err = c.Compile(doc)
			require.Error(t, err)
			assert.True(t, errors.As(err, tt.target), "got %T", err)
			assert.Contains(t, err.Error(), tt.msg)
			assert.Equal(t, 0, c.Rules().Len(), "no rules recorded on failure")
		})
	}
}

func TestCompile_FailureRecordsNothing(t *testing.T) {
	c := newTestCompiler(t)
	doc, err := jsx.Parse("test.jsx", `<><a m={1} /><b m={f()} /></>`)
	require.NoError(t, err)

	_, err = c.Compile(doc)
	require.Error(t, err)
	assert.Equal(t, 0, c.Rules().Len())
}

func TestDiagnose(t *testing.T) {
	c := newTestCompiler(t)
	src := "<><div m={1} m={2} p={a.b} />\n<span px={[1, 2, 3, 4, 5]} /></>"
	doc, err := jsx.Parse("d.jsx", src)
	require.NoError(t, err)

	errs := c.Diagnose(doc)
	require.Len(t, errs, 3)

	var dup *DuplicateAttributeWarning
	require.True(t, errors.As(errs[0], &dup))
	assert.Equal(t, "m", dup.Attribute)
	assert.Equal(t, 14, dup.Column)

	var unsupported *UnsupportedValueError
	require.True(t, errors.As(errs[1], &unsupported))
	assert.Equal(t, "member expression", unsupported.Shape)

	var tooMany *TooManyValuesError
	require.True(t, errors.As(errs[2], &tooMany))
	assert.Equal(t, 2, tooMany.Line)

	assert.Equal(t, 0, c.Rules().Len())
}

func TestPlan(t *testing.T) {
	c := newTestCompiler(t)
	doc, err := jsx.Parse("p.jsx", `<div className="x" my={[0, v]} {...rest} />`)
	require.NoError(t, err)

	plan, err := c.Plan(doc, doc.Elements[0])
	require.NoError(t, err)
	require.NotNil(t, plan)
	require.NotNil(t, plan.Existing)
	require.Len(t, plan.Attributes, 1)

	assert.Equal(t, []PlannedClass{
		{Name: "my-0", Declaration: "margin-top: 0rem; margin-bottom: 0rem;"},
		{Name: "my-xs-${v}", Breakpoint: "xs", Interpolated: true},
	}, plan.Attributes[0].Classes)
	assert.Equal(t, []string{"my-0"}, plan.Static())
	assert.Equal(t, []string{"my-xs-${v}"}, plan.Interpolated())
}

func TestNewCompiler_InvalidOptions(t *testing.T) {
	_, err := NewCompiler(Options{Scale: -1, Unit: "rem"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid spacing options")
}
