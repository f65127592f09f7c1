package parser

type line struct {
	text   []byte
	number int
}

func newLine(text []byte, number int) line {
	return line{
		text:   text,
		number: number,
	}
}
