//go:build linux

package main

import "golang.design/x/hotkey"

// X11 calls the Alt modifier Mod1.
const modAlt = hotkey.Mod1
