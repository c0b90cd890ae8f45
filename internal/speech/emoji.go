package speech

// emojiNames maps common terminal-output emoji graphemes to a spoken name.
// No emoji-name package appears anywhere in the retrieved dependency pack,
// so this is a small hand-rolled fallback table rather than a pulled-in
// database; it only needs to cover symbols likely to appear in CLI output
// (status icons, build/test result markers, common reactions).
var emojiNames = map[string]string{
	"✅": "check mark",
	"❌": "cross mark",
	"⚠️": "warning",
	"⚠":  "warning",
	"🔥": "fire",
	"🚀": "rocket",
	"🎉": "party popper",
	"👍": "thumbs up",
	"👎": "thumbs down",
	"💡": "light bulb",
	"🐛": "bug",
	"🔒": "locked",
	"🔓": "unlocked",
	"⭐": "star",
	"✨": "sparkles",
	"📦": "package",
	"🧪": "test tube",
	"⏳": "hourglass",
	"✔️": "check mark",
	"✔":  "check mark",
	"✖️": "cross mark",
	"✖":  "cross mark",
	"🟢": "green circle",
	"🔴": "red circle",
	"🟡": "yellow circle",
	"❗": "exclamation",
	"❓": "question mark",
	"😀": "grinning face",
	"😂": "face with tears of joy",
	"😢": "crying face",
	"😎": "smiling face with sunglasses",
	"🙏": "folded hands",
	"👀": "eyes",
	"💯": "hundred points",
}
