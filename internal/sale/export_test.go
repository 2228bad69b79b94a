package sale

func init() {
	debugInvariants = true
}
