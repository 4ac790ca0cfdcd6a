package hlist

// Semigraphics used by the primitives of this package. Runes are written with
// \u escapes to keep the source ASCII-safe.
const (
	// General Punctuation U+2000-U+206F
	SemigraphicsHorizontalEllipsis rune = '\u2026' // …
	SemigraphicsBullet             rune = '\u2022' // •

	// Box Drawing U+2500-U+257F
	BoxDrawingsLightHorizontal      rune = '\u2500' // ─
	BoxDrawingsHeavyHorizontal      rune = '\u2501' // ━
	BoxDrawingsLightVertical        rune = '\u2502' // │
	BoxDrawingsHeavyVertical        rune = '\u2503' // ┃
	BoxDrawingsLightDownAndRight    rune = '\u250c' // ┌
	BoxDrawingsHeavyDownAndRight    rune = '\u250f' // ┏
	BoxDrawingsLightDownAndLeft     rune = '\u2510' // ┐
	BoxDrawingsHeavyDownAndLeft     rune = '\u2513' // ┓
	BoxDrawingsLightUpAndRight      rune = '\u2514' // └
	BoxDrawingsHeavyUpAndRight      rune = '\u2517' // ┗
	BoxDrawingsLightUpAndLeft       rune = '\u2518' // ┘
	BoxDrawingsHeavyUpAndLeft       rune = '\u251b' // ┛
	BoxDrawingsDoubleHorizontal     rune = '\u2550' // ═
	BoxDrawingsDoubleVertical       rune = '\u2551' // ║
	BoxDrawingsDoubleDownAndRight   rune = '\u2554' // ╔
	BoxDrawingsDoubleDownAndLeft    rune = '\u2557' // ╗
	BoxDrawingsDoubleUpAndRight     rune = '\u255a' // ╚
	BoxDrawingsDoubleUpAndLeft      rune = '\u255d' // ╝
	BoxDrawingsLightArcDownAndRight rune = '\u256d' // ╭
	BoxDrawingsLightArcDownAndLeft  rune = '\u256e' // ╮
	BoxDrawingsLightArcUpAndLeft    rune = '\u256f' // ╯
	BoxDrawingsLightArcUpAndRight   rune = '\u2570' // ╰

	// Geometric Shapes U+25A0-U+25FF
	GeometricSmallRightTriangle rune = '\u25b8' // ▸
	GeometricSmallDownTriangle  rune = '\u25be' // ▾
)
