package cmd

import "testing"

func TestGuide(t *testing.T) {
	t.Run("main guide", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("guide")
		env.contains(out, "datecheck")
	})

	t.Run("calendar page documents the february rule", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("guide", "calendar")
		env.contains(out, "February")
		env.contains(out, "divisible by 4")
	})

	t.Run("unknown page lists available", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.runErr("guide", "nonexistent")
		if err == nil {
			t.Error("guide nonexistent = nil error, want error")
		}
	})
}

func TestVersion(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("version")
	env.contains(out, "Build Tag:")
	env.contains(out, "Go Version:")

	out = env.run("version", "-o", "json")
	env.contains(out, `"build_tag"`)
}
