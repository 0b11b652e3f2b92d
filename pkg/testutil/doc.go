// Package testutil provides test doubles for mkmodule's collaborators and
// helpers for building modulefile trees on disk.
//
// The host account directory, the login session, the interactive terminal
// and the editor are all reached through small interfaces; the mocks here
// let tests drive them deterministically without a real host environment
// or a human at the keyboard.
package testutil
