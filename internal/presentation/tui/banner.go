package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs an ASCII art banner for flowdoc with its version.
func PrintBanner(version string) {
	p := termenv.ColorProfile()
	// Subtle gradient-like color scheme (Indigo/Violet)
	s1 := termenv.String("   __ _                   _            ").Foreground(p.Color("#818cf8"))
	s2 := termenv.String("  / _| | _____      ____| | ___   ___ ").Foreground(p.Color("#a78bfa"))
	s3 := termenv.String(" | |_| |/ _ \\ \\ /\\ / / _` |/ _ \\ / __|").Foreground(p.Color("#c084fc"))
	s4 := termenv.String(" |  _| | (_) \\ V  V / (_| | (_) | (__ ").Foreground(p.Color("#e879f9"))
	s5 := termenv.String(" |_| |_|\\___/ \\_/\\_/ \\__,_|\\___/ \\___|").Foreground(p.Color("#f472b6"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Printf("  %s\n", termenv.String("v"+version).Faint())
	fmt.Println()
}
