// Package fixture provides the test fixtures for code built on the glint
// host accessors.
//
// Every fixture follows the same shape: install a double or a directory,
// hand it back, and undo the installation when the test ends, whether it
// passed, failed or panicked. Per-test fixtures take a testing.TB and
// register their teardown with t.Cleanup. Session-wide doubles live on a
// Session built once in TestMain:
//
//	var session *fixture.Session
//
//	func TestMain(m *testing.M) {
//		session = fixture.NewSession(host.NewAccessors())
//		code := m.Run()
//		session.Close()
//		os.Exit(code)
//	}
//
// Test packages declare their settings and scratch directory once:
//
//	var module = fixture.Module{
//		Settings:  config.Settings{"retries": 3},
//		GlintRoot: "projects-test",
//	}
package fixture
