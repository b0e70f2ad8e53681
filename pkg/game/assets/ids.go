package assets

// Sprite identifiers. Each maps to <id>.png in the asset directory.
const (
	SpriteChest         = "chest"
	SpriteButton        = "button"
	SpriteDoor          = "door"
	SpriteDoorOpen      = "door_open"
	SpriteKeypad        = "keypad_extra"
	SpriteKeypadDisplay = "keypad_display"
	SpriteKey           = "key_a"
	SpriteSlot          = "slot"
	SpriteRope          = "rope"
	SpriteShard         = "vase_fragment"
	SpriteCellar        = "bg"
	SpriteVault         = "bg2"
	SpriteAttic         = "bg3"
)

// Sound files
const (
	SoundTheme    = "theme.mp3"
	SoundDoorOpen = "open.wav"
)

// Sprites lists every sprite the game draws
func Sprites() []string {
	return []string{
		SpriteChest, SpriteButton, SpriteDoor, SpriteDoorOpen, SpriteKeypad,
		SpriteKeypadDisplay, SpriteKey, SpriteSlot, SpriteRope, SpriteShard,
		SpriteCellar, SpriteVault, SpriteAttic,
	}
}
