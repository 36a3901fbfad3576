//go:build windows

package main

import "golang.design/x/hotkey"

const modAlt = hotkey.ModAlt
