package debugctx

import (
	"log/slog"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResource struct {
	current  int
	released int
}

func (r *fakeResource) MakeCurrent() { r.current++ }
func (r *fakeResource) Release()     { r.released++ }

type fakePlatform struct {
	calls  int
	params Params
	res    *fakeResource
	status Status
}

func (p *fakePlatform) Create(params Params, l *slog.Logger) (Resource, Status) {
	p.calls++
	p.params = params
	if p.res == nil {
		l.Error("verification failed", "check", "fake")
		return nil, StatusFailed
	}
	return p.res, p.status
}

var (
	enabled  = Flags{DebugOutput: true}
	disabled = Flags{}
)

func TestDisabledIsInert(t *testing.T) {
	p := &fakePlatform{res: &fakeResource{}, status: StatusCreated}
	rec, l := newRecorder()
	c := New(4, 1, true, true, WithFlags(disabled), WithPlatform(p), WithLogger(l))

	c.MakeCurrent()
	c.Release()
	assert.Equal(t, 0, p.calls)
	assert.Equal(t, 0, p.res.current)
	assert.Equal(t, 0, p.res.released)
	assert.Equal(t, StatusInert, c.Status())
	assert.Equal(t, 0, rec.count(slog.LevelError))
}

func TestEnabledCreatesAndReleasesOnce(t *testing.T) {
	res := &fakeResource{}
	p := &fakePlatform{res: res, status: StatusCreated}
	c := New(4, 1, false, true, WithFlags(enabled), WithPlatform(p))

	require.Equal(t, 1, p.calls)
	assert.Equal(t, Params{Major: 4, Minor: 1, DirectRendering: true}, p.params)
	assert.Equal(t, CompatibilityProfile, p.params.Profile())
	assert.Equal(t, StatusCreated, c.Status())
	assert.True(t, c.Status().Usable())

	c.MakeCurrent()
	c.MakeCurrent()
	assert.Equal(t, 2, res.current)

	c.Release()
	c.Release()
	assert.Equal(t, 1, res.released)
}

func TestFailedCreationMakeCurrentIsVerified(t *testing.T) {
	rec, l := newRecorder()
	p := &fakePlatform{}
	c := New(3, 2, true, false, WithFlags(enabled), WithPlatform(p), WithLogger(l))

	assert.Equal(t, StatusFailed, c.Status())
	assert.False(t, c.Status().Usable())
	assert.Equal(t, 1, rec.count(slog.LevelError))

	assert.NotPanics(t, c.MakeCurrent)
	assert.Equal(t, 2, rec.count(slog.LevelError))
	assert.NotPanics(t, c.Release)
}

func TestInertPlatform(t *testing.T) {
	rec, l := newRecorder()
	c := New(4, 5, true, true, WithFlags(enabled), WithPlatform(Inert), WithLogger(l))

	assert.Equal(t, StatusInert, c.Status())
	c.MakeCurrent()
	c.Release()
	assert.Equal(t, 0, rec.count(slog.LevelError))
}

func TestDefaultPlatformIsInert(t *testing.T) {
	c := New(4, 1, false, false, WithFlags(enabled))
	assert.Equal(t, StatusInert, c.Status())
}

func TestChooseMacVisual(t *testing.T) {
	var marker byte
	selected := Visual(unsafe.Pointer(&marker))
	selector := func() Visual { return selected }

	for _, c := range []struct {
		core, global bool
		want         Visual
	}{
		{false, false, nil},
		{true, false, selected},
		{false, true, selected},
		{true, true, selected},
	} {
		ctx := New(3, 2, c.core, false,
			WithFlags(Flags{CoreProfile: c.global}), WithVisualSelector(selector))
		assert.Equal(t, c.want, ctx.ChooseMacVisual(),
			"coreProfile=%v, global=%v", c.core, c.global)
	}
}

func TestChooseMacVisualWithoutSelector(t *testing.T) {
	c := New(3, 2, true, false, WithFlags(Flags{CoreProfile: true}))
	assert.Equal(t, Visual(nil), c.ChooseMacVisual())
}

func TestProcessFlagsAreCached(t *testing.T) {
	debug, core := IsEnabledDebugOutput(), IsEnabledCoreProfile()

	t.Setenv(DebugOutputVar, flip(debug))
	t.Setenv(CoreProfileVar, flip(core))
	assert.Equal(t, debug, IsEnabledDebugOutput())
	assert.Equal(t, core, IsEnabledCoreProfile())
	assert.Equal(t, Flags{DebugOutput: debug, CoreProfile: core}, ProcessFlags())
}

func flip(b bool) string {
	if b {
		return "0"
	}
	return "1"
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "legacy", StatusLegacy.String())
	assert.Equal(t, "unknown", Status(42).String())
	assert.Equal(t, "core", Params{CoreProfile: true}.Profile().String())
}

func TestSetLogger(t *testing.T) {
	rec, l := newRecorder()
	SetLogger(l)
	defer SetLogger(nil)

	c := New(4, 1, false, false, WithFlags(enabled), WithPlatform(&fakePlatform{}))
	c.MakeCurrent()
	assert.Equal(t, 2, rec.count(slog.LevelError))
}
