package main

import (
	"time"

	"github.com/micmonay/keybd_event"
)

// keySimulator is the keystroke-injection surface used by capture and paste.
// The real implementation drives the OS input queue; tests substitute a fake.
type keySimulator interface {
	// CopyChord taps the copy chord in one stroke.
	CopyChord() error
	// CopyHold presses the chord, holds it for step, then releases. Some
	// applications ignore a fast tap but honor a held chord.
	CopyHold(step time.Duration) error
	// Paste taps the paste chord.
	Paste() error
	// SelectLeft extends the selection backward by moves shift+left taps,
	// pausing interKey between taps.
	SelectLeft(moves int, interKey time.Duration) error
}

type kbdSimulator struct{}

func (kbdSimulator) CopyChord() error {
	kb, err := keybd_event.NewKeyBonding()
	if err != nil {
		return err
	}
	kb.SetKeys(keybd_event.VK_C)
	kb.HasCTRL(true)
	return kb.Launching()
}

func (kbdSimulator) CopyHold(step time.Duration) error {
	kb, err := keybd_event.NewKeyBonding()
	if err != nil {
		return err
	}
	kb.SetKeys(keybd_event.VK_C)
	kb.HasCTRL(true)
	if err := kb.Press(); err != nil {
		return err
	}
	time.Sleep(step)
	return kb.Release()
}

func (kbdSimulator) Paste() error {
	kb, err := keybd_event.NewKeyBonding()
	if err != nil {
		return err
	}
	kb.SetKeys(keybd_event.VK_V)
	kb.HasCTRL(true)
	return kb.Launching()
}

func (kbdSimulator) SelectLeft(moves int, interKey time.Duration) error {
	kb, err := keybd_event.NewKeyBonding()
	if err != nil {
		return err
	}
	kb.SetKeys(keybd_event.VK_LEFT)
	kb.HasSHIFT(true)
	for i := 0; i < moves; i++ {
		if err := kb.Launching(); err != nil {
			return err
		}
		time.Sleep(interKey)
	}
	return nil
}
