package lifecycle

import "github.com/vk/drover/internal/registry"

// DefaultTarget is the target run when the operator names none.
const DefaultTarget = "build"

// New assembles the built-in target registry. Command strings are opaque to
// the engine; the $(...) expansions inside them belong to the shell.
func New() (*registry.Registry, error) {
	b := registry.NewBuilder()

	b.Target("deps", "Download and verify module dependencies.").
		Run(
			"go mod download",
			"go mod verify",
		)

	b.Target("clean", "Remove build output and coverage artifacts.").
		Run("rm -rf dist coverage.out")

	b.Target("build", "Package a distributable binary into dist/.").
		Deps("deps", "clean").
		Run(
			"mkdir -p dist",
			`go build -trimpath -ldflags "-X github.com/vk/drover/internal/buildinfo.Version=$(cat VERSION)" -o dist/drover ./cmd/drover`,
		)

	b.Target("fmt", "Rewrite source in place with the formatters.").
		Run(
			"gofmt -w .",
			"goimports -local github.com/vk/drover -w .",
		)

	b.Target("lint", "Run the static checker and the formatter in check-only mode.").
		Run(
			"go vet ./...",
			`test -z "$(gofmt -l .)"`,
		)

	b.Target("test", "Run the test suite.").
		Deps("deps").
		Run("go test ./...")

	b.Target("cover", "Run the test suite with coverage instrumentation.").
		Deps("deps").
		Run(
			"go test -coverprofile=coverage.out ./...",
			"go tool cover -func=coverage.out",
		)

	b.Target("watch", "Re-run the test suite on every change until interrupted.").
		Deps("deps").
		Run("gotestsum --watch")

	b.Target("check", "Lint and test.").
		Deps("lint", "test")

	b.Target("all", "Build and check everything.").
		Deps("build", "check")

	b.Target("version", "Commit, sign-tag and push the release recorded in VERSION.").
		Deps("check").
		Run(
			"git add VERSION",
			`git commit -m "release: v$(cat VERSION)"`,
			`git tag -s "v$(cat VERSION)" -m "drover v$(cat VERSION)"`,
			"git push origin HEAD",
			"git push origin --tags",
		)

	b.Default(DefaultTarget)
	return b.Build()
}
