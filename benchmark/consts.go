package benchmark

const (
	DefaultBlockSize  = 1000 // DefaultBlockSize is the per-epoch dataset growth
	DefaultBlockCount = 50   // DefaultBlockCount is the number of epochs per sweep

	exitCodeFatal = 127 // exitCodeFatal is the process exit code for aborted runs
)
