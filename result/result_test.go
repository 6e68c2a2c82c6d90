package result

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccessError(t *testing.T) {
	s := Success(42)
	assert.True(t, s.IsSuccess())
	assert.False(t, s.IsError())
	v, ok := s.Result()
	require.True(t, ok)
	assert.Equal(t, 42, v)

	e := Error[int]("boom")
	assert.False(t, e.IsSuccess())
	assert.True(t, e.IsError())
	msg, ok := e.ErrMessage()
	require.True(t, ok)
	assert.Equal(t, "boom", msg)
	_, hasPartial := e.Partial()
	assert.False(t, hasPartial)
}

func TestErrorPartial(t *testing.T) {
	e := ErrorPartial("bad field", 7)
	assert.True(t, e.IsError())
	p, ok := e.Partial()
	require.True(t, ok)
	assert.Equal(t, 7, p)
}

func TestMapLaws(t *testing.T) {
	// map(identity) = identity
	s := Success(10)
	mapped := Map(s, func(a int) int { return a })
	assert.Equal(t, s, mapped)

	// Success map
	m2 := Map(Success(3), func(a int) string { return "x" })
	v, ok := m2.Result()
	require.True(t, ok)
	assert.Equal(t, "x", v)

	// Error-with-partial map applies f to partial
	ep := ErrorPartial("msg", 5)
	m3 := Map(ep, func(a int) int { return a * 2 })
	p, ok := m3.Partial()
	require.True(t, ok)
	assert.Equal(t, 10, p)

	// Error-without-partial is absorbing
	e := Error[int]("msg")
	m4 := Map(e, func(a int) int { return a * 2 })
	assert.True(t, m4.IsError())
	_, hasPartial := m4.Partial()
	assert.False(t, hasPartial)
}

func TestFlatMapLaws(t *testing.T) {
	// flat_map(success) = identity
	s := Success(5)
	fm := FlatMap(s, func(a int) DataResult[int] { return Success(a) })
	assert.Equal(t, s, fm)

	// composition law on Success
	f := func(a int) DataResult[int] { return Success(a + 1) }
	g := func(a int) DataResult[int] { return Success(a * 2) }
	lhs := FlatMap(FlatMap(s, f), g)
	rhs := FlatMap(s, func(a int) DataResult[int] { return FlatMap(f(a), g) })
	assert.Equal(t, lhs, rhs)

	// Error-with-partial: inner success becomes Error(origMsg, newValue)
	ep := ErrorPartial("orig", 3)
	r := FlatMap(ep, func(a int) DataResult[int] { return Success(a + 100) })
	assert.True(t, r.IsError())
	msg, _ := r.ErrMessage()
	assert.Equal(t, "orig", msg)
	p, ok := r.Partial()
	require.True(t, ok)
	assert.Equal(t, 103, p)

	// Error-with-partial: inner error concatenates messages
	r2 := FlatMap(ep, func(a int) DataResult[int] { return Error[int]("inner") })
	msg2, _ := r2.ErrMessage()
	assert.Equal(t, "orig; inner", msg2)

	// Error-without-partial is absorbing
	e := Error[int]("msg")
	r3 := FlatMap(e, func(a int) DataResult[int] { return Success(a) })
	assert.True(t, r3.IsError())
	msg3, _ := r3.ErrMessage()
	assert.Equal(t, "msg", msg3)
}

func TestApply2(t *testing.T) {
	both := Apply2(Success(1), Success(2), func(a, b int) int { return a + b })
	v, ok := both.Result()
	require.True(t, ok)
	assert.Equal(t, 3, v)

	bothErr := Apply2(ErrorPartial[int]("a", 1), ErrorPartial[int]("b", 2), func(a, b int) int { return a + b })
	assert.True(t, bothErr.IsError())
	msg, _ := bothErr.ErrMessage()
	assert.Equal(t, "a; b", msg)
	p, ok := bothErr.Partial()
	require.True(t, ok)
	assert.Equal(t, 3, p)

	oneErr := Apply2(Error[int]("a"), Success(2), func(a, b int) int { return a + b })
	assert.True(t, oneErr.IsError())
	msgOne, _ := oneErr.ErrMessage()
	assert.Equal(t, "a", msgOne)
}

func TestPromotePartial(t *testing.T) {
	var logged string
	ep := ErrorPartial("oops", 9)
	promoted := ep.PromotePartial(func(msg string) { logged = msg })
	assert.Equal(t, "oops", logged)
	v, ok := promoted.Result()
	require.True(t, ok)
	assert.Equal(t, 9, v)

	s := Success(1)
	assert.Equal(t, s, s.PromotePartial(func(string) {}))
}

func TestGetOrThrowAndOrElse(t *testing.T) {
	s := Success(1)
	assert.Equal(t, 1, s.GetOrThrow(func(msg string) error { return errors.New(msg) }))

	e := Error[int]("bad")
	assert.Panics(t, func() {
		e.GetOrThrow(func(msg string) error { return errors.New(msg) })
	})

	assert.Equal(t, 42, e.OrElse(42))
	assert.Equal(t, 42, e.OrElseGet(func() int { return 42 }))
	assert.Equal(t, 1, s.OrElse(42))
}

func TestResultOrPartial(t *testing.T) {
	var logged bool
	ep := ErrorPartial("msg", 3)
	v := ep.ResultOrPartial(func(string) { logged = true })
	assert.True(t, logged)
	assert.Equal(t, 3, v)

	s := Success(9)
	assert.Equal(t, 9, s.ResultOrPartial(func(string) {}))

	e := Error[int]("no partial")
	assert.Panics(t, func() {
		e.ResultOrPartial(func(string) {})
	})
}

func TestToEither(t *testing.T) {
	s := Success(5)
	either := s.ToEither()
	assert.True(t, either.IsRight())
	v, ok := either.RightValue()
	require.True(t, ok)
	assert.Equal(t, 5, v)

	e := ErrorPartial("msg", 9)
	eitherErr := e.ToEither()
	assert.True(t, eitherErr.IsLeft())
	l, ok := eitherErr.LeftValue()
	require.True(t, ok)
	assert.Equal(t, "msg", l)
}

func TestMapError(t *testing.T) {
	e := ErrorPartial("msg", 1)
	mapped := e.MapError(func(m string) string { return m + "!" })
	msg, _ := mapped.ErrMessage()
	assert.Equal(t, "msg!", msg)
	p, ok := mapped.Partial()
	require.True(t, ok)
	assert.Equal(t, 1, p)

	s := Success(1)
	assert.Equal(t, s, s.MapError(func(m string) string { return m + "!" }))
}
