package jsoncontract

type byteSeq interface {
	~string | ~[]byte
}

func runeCount[S byteSeq](s S) int {
	return len([]rune(string(s)))
}
