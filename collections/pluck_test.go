package collections_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-underscore/collections"
)

type address struct {
	City string `json:"city"`
}

type user struct {
	ID        int
	FirstName string `json:"given_name"`
	Color     string
	Address   *address
	Tags      []string
	secret    string
}

func (u user) Greeting(prefix string) string { return prefix + " " + u.FirstName }

func (u *user) Rename(name string) user {
	u.FirstName = name
	return *u
}

func (u user) Join(sep string, parts ...string) string {
	return u.FirstName + sep + strings.Join(parts, sep)
}

func (u user) Validate() error {
	if u.ID < 0 {
		return fmt.Errorf("invalid id %d", u.ID)
	}
	return nil
}

func (u user) Lookup(key string) (string, error) {
	if key == "" {
		return "", errors.New("empty key")
	}
	return u.FirstName + ":" + key, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Pluck
// ─────────────────────────────────────────────────────────────────────────────

func TestPluckMaps(t *testing.T) {
	c := collections.NewSequence[any](
		map[string]any{"color": "red"},
		map[string]any{"color": "green"},
		map[string]string{"color": "blue"},
	)
	require.Equal(t, []any{"red", "green", "blue"}, collections.Pluck(c, "color").Items())
	require.Equal(t, []any{collections.Missing, collections.Missing, collections.Missing}, collections.Pluck(c, "size").Items())
}

func TestPluckMappings(t *testing.T) {
	proto := collections.NewMapping[any]().Set("kind", "fruit")
	c := collections.NewMapping[*collections.Mapping[any]]().
		Set("x", proto.Derive().Set("name", "apple")).
		Set("y", collections.NewMapping[any]().Set("name", "pear"))
	require.Equal(t, []any{"apple", "pear"}, collections.Pluck(c, "name").Items())
	require.Equal(t, []any{"fruit", collections.Missing}, collections.Pluck(c, "kind").Items())
}

func TestPluckStructs(t *testing.T) {
	c := collections.NewSequence(
		user{ID: 1, FirstName: "Ada", Color: "red", Address: &address{City: "London"}, Tags: []string{"x", "y"}},
		user{ID: 2, FirstName: "Bob", Color: "green"},
	)
	require.Equal(t, []any{"red", "green"}, collections.Pluck(c, "Color").Items())
	require.Equal(t, []any{"red", "green"}, collections.Pluck(c, "color").Items())
	require.Equal(t, []any{1, 2}, collections.Pluck(c, "id").Items())
	require.Equal(t, []any{"Ada", "Bob"}, collections.Pluck(c, "given_name").Items())
	require.Equal(t, []any{"London", collections.Missing}, collections.Pluck(c, "Address.city").Items())
	require.Equal(t, []any{"y", collections.Missing}, collections.Pluck(c, "Tags.1").Items())
	require.Equal(t, []any{collections.Missing, collections.Missing}, collections.Pluck(c, "secret").Items())

	ptrs := collections.NewSequence(&user{Color: "blue"}, nil)
	require.Equal(t, []any{"blue", collections.Missing}, collections.Pluck(ptrs, "Color").Items())
}

func TestPluckFunc(t *testing.T) {
	c := collections.NewSequence(user{FirstName: "Ada"}, user{FirstName: "Bob"})
	require.Equal(t, []string{"Ada", "Bob"}, collections.PluckFunc(c, func(u user) string { return u.FirstName }).Items())
}

func TestMissing(t *testing.T) {
	require.Equal(t, "<missing>", collections.Missing.String())
	b, err := collections.Missing.MarshalJSON()
	require.NoError(t, err)
	require.Equal(t, "null", string(b))
}

func TestProperty(t *testing.T) {
	doc := map[string]any{
		"a.b": 1,
		"a":   map[string]any{"b": 2, "c": []any{"x"}},
	}
	v, ok := collections.Property(doc, "a.b")
	require.True(t, ok)
	require.Equal(t, 1, v, "an exact key wins over a path")

	v, ok = collections.Property(doc, "a.c.0")
	require.True(t, ok)
	require.Equal(t, "x", v)

	_, ok = collections.Property(doc, "a.c.1")
	require.False(t, ok)
	_, ok = collections.Property(nil, "a")
	require.False(t, ok)
	_, ok = collections.Property(map[int]string{1: "a"}, "1")
	require.False(t, ok)
}

// ─────────────────────────────────────────────────────────────────────────────
// Invoke
// ─────────────────────────────────────────────────────────────────────────────

func TestInvokeMethodName(t *testing.T) {
	c := collections.NewSequence(user{FirstName: "Ada"}, user{FirstName: "Bob"})
	got, err := collections.Invoke(c, "Greeting", "hi")
	require.NoError(t, err)
	require.Equal(t, []any{"hi Ada", "hi Bob"}, got.Items())

	got, err = collections.Invoke(c, "greeting", "hey")
	require.NoError(t, err)
	require.Equal(t, []any{"hey Ada", "hey Bob"}, got.Items())
}

func TestInvokePointerReceiverOnCopy(t *testing.T) {
	c := collections.NewSequence(user{FirstName: "Ada"})
	got, err := collections.Invoke(c, "Rename", "Eve")
	require.NoError(t, err)
	require.Equal(t, "Eve", got.Items()[0].(user).FirstName)
	require.Equal(t, "Ada", c.Items()[0].FirstName, "elements stored by value are not modified")

	ptr := &user{FirstName: "Ada"}
	_, err = collections.Invoke(collections.NewSequence(ptr), "Rename", "Eve")
	require.NoError(t, err)
	require.Equal(t, "Eve", ptr.FirstName)
}

func TestInvokeArguments(t *testing.T) {
	c := collections.NewSequence(user{FirstName: "a"})

	got, err := collections.Invoke(c, "Join", "-", "b", "c")
	require.NoError(t, err)
	require.Equal(t, []any{"a-b-c"}, got.Items())

	got, err = collections.Invoke(c, "Greeting")
	require.NoError(t, err)
	require.Equal(t, []any{" a"}, got.Items(), "missing arguments are zero values")

	got, err = collections.Invoke(c, "Greeting", "hi", "ignored")
	require.NoError(t, err)
	require.Equal(t, []any{"hi a"}, got.Items())

	_, err = collections.Invoke(c, "Greeting", 42)
	require.ErrorIs(t, err, collections.ErrArgumentType)
}

func TestInvokeErrors(t *testing.T) {
	c := collections.NewSequence(user{ID: 1}, user{ID: -1})

	_, err := collections.Invoke(c, "Validate")
	require.EqualError(t, err, "collections: invoke at 1: invalid id -1")

	got, err := collections.Invoke(collections.NewSequence(user{FirstName: "Ada"}), "Lookup", "k")
	require.NoError(t, err)
	require.Equal(t, []any{"Ada:k"}, got.Items())

	_, err = collections.Invoke(c, "Missing")
	require.ErrorIs(t, err, collections.ErrMethodNotFound)

	_, err = collections.Invoke(c, 42)
	require.ErrorIs(t, err, collections.ErrNotInvocable)

	var nilFn func(user, []any) string
	_, err = collections.Invoke(c, nilFn)
	require.ErrorIs(t, err, collections.ErrNotInvocable)
}

func TestInvokeFunctionMembers(t *testing.T) {
	double := func(n int) int { return n * 2 }
	m := collections.NewMapping[any]().Set("apply", double)
	c := collections.NewSequence[any](m, map[string]any{"apply": func(n int) int { return n + 1 }})

	got, err := collections.Invoke(c, "apply", 10)
	require.NoError(t, err)
	require.Equal(t, []any{20, 11}, got.Items())
}

func TestInvokeSharedFunction(t *testing.T) {
	c := collections.NewMapping[int]().Set("a", 1).Set("b", 2)

	var forwarded [][]any
	got, err := collections.Invoke(c, func(v int, args []any) any {
		forwarded = append(forwarded, args)
		return v * args[0].(int)
	}, 10, "x")
	require.NoError(t, err)
	require.Equal(t, []any{10, 20}, got.Items())
	require.Equal(t, [][]any{{10, "x"}, {10, "x"}}, forwarded)

	got, err = collections.Invoke(c, func(v int, args []any) string {
		return fmt.Sprint(v, len(args))
	}, "x")
	require.NoError(t, err)
	require.Equal(t, []any{"1 1", "2 1"}, got.Items())
}

func TestInvokeFunc(t *testing.T) {
	c := collections.NewSequence("a", "b")
	got := collections.InvokeFunc(c, func(v string, args []any) string {
		return strings.Repeat(v, args[0].(int))
	}, 3)
	assert.Equal(t, []string{"aaa", "bbb"}, got.Items())
}
