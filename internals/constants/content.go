package constants

// Tipe content block yang bisa dirender di halaman blog.
const (
	BlockHeading2   = "h2"
	BlockHeading3   = "h3"
	BlockParagraph  = "p"
	BlockList       = "ul"
	BlockBlockquote = "blockquote"
)

var ContentBlockTypes = []string{
	BlockHeading2,
	BlockHeading3,
	BlockParagraph,
	BlockList,
	BlockBlockquote,
}

func IsContentBlockType(t string) bool {
	for _, bt := range ContentBlockTypes {
		if bt == t {
			return true
		}
	}
	return false
}

// Bucket untuk post yang belum punya topic di tampilan admin.
const TopicNone = "No Topic"
