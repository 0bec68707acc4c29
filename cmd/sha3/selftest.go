package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/pkg/errors"

	"github.com/Giulio2002/sha3"
)

var errSelfTest = errors.New("self-test failed")

var (
	okLabel   = color.New(color.Bold, color.FgGreen).SprintFunc()
	failLabel = color.New(color.Bold, color.FgRed).SprintFunc()
)

type vector struct {
	size  int
	input string
	want  string
}

// selfTestVectors covers the empty string, "abcde", and the hex digest of
// "abcde" hashed again as text, for every size.
var selfTestVectors = []vector{
	{224, "", "6b4e03423667dbb73b6e15454f0eb1abd4597f9a1b078e3f5b5a6bc7"},
	{224, "abcde", "6acfaab70afd8439cea3616b41088bd81c939b272548f6409cf30e57"},
	{224, "6acfaab70afd8439cea3616b41088bd81c939b272548f6409cf30e57",
		"bd9c9f3ffa82a4492078a815b4d4d8f534be0a0144c619e391a299e6"},

	{256, "", "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a"},
	{256, "abcde", "d716ec61e18904a8f58679b71cb065d4d5db72e0e0c3f155a4feff7add0e58eb"},
	{256, "d716ec61e18904a8f58679b71cb065d4d5db72e0e0c3f155a4feff7add0e58eb",
		"58e437cd7fb13bc1b9537cd02d2bd7bfab5f5c66e604d32757a2de74e2a4e058"},

	{384, "", "0c63a75b845e4f7d01107d852e4c2485c51a50aaaa94fc61995e71bbee983a2ac3713831264adb47fb6bd1e058d5f004"},
	{384, "abcde", "348494236b82edda7602c78ba67fc3838e427c63c23e2c9d9aa5ea6354218a3c2ca564679acabf3ac6bf5378047691c4"},
	{384, "348494236b82edda7602c78ba67fc3838e427c63c23e2c9d9aa5ea6354218a3c2ca564679acabf3ac6bf5378047691c4",
		"e69c1eb7639e1fcb1824c50f5c128a460649eea67ee00e73054434dd9cce095828223645a1a63047ecb4ad93e88ea39b"},

	{512, "", "a69f73cca23a9ac5c8b567dc185a756e97c982164fe25859e0d1dcc1475c80a615b2123af1f5f94c11e3e9402c3ac558f500199d95b6d3e301758586281dcd26"},
	{512, "abcde", "1d7c3aa6ee17da5f4aeb78be968aa38476dbee54842e1ae2856f4c9a5cd04d45dc75c2902182b07c130ed582d476995b502b8777ccf69f60574471600386639b"},
	{512, "1d7c3aa6ee17da5f4aeb78be968aa38476dbee54842e1ae2856f4c9a5cd04d45dc75c2902182b07c130ed582d476995b502b8777ccf69f60574471600386639b",
		"31f82868746cf95d8fdeccd6f91fd6d998297eba09c87da23d8e174ba2a51acda1c26a5a5c601c0f1292ed9585a706780b77cfbfa2d56cc168743f4cd30ffea3"},
}

// testState counts self-test outcomes.
type testState struct {
	runs      int
	successes int
}

func (s *testState) success() {
	s.runs++
	s.successes++
}

func (s *testState) failure() {
	s.runs++
}

func (s *testState) allPassed() bool {
	return s.runs == s.successes
}

// runSelfTest checks every vector, printing one line per vector and a
// summary to w. It returns errSelfTest if any vector fails.
func runSelfTest(w io.Writer, vectors []vector) error {
	var st testState
	for _, v := range vectors {
		got, err := sha3.HashString(v.input, v.size)
		if err != nil {
			log.Warnw("self-test vector errored", "size", v.size, "err", err)
		}
		if err == nil && got == v.want {
			fmt.Fprintf(w, "%s SHA3-%d (%q)\n", okLabel("[OK]"), v.size, v.input)
			st.success()
			continue
		}
		fmt.Fprintf(w, "%s SHA3-%d (%q) != %s\n", failLabel("[FAILED]"), v.size, v.input, v.want)
		st.failure()
	}

	if st.allPassed() {
		fmt.Fprintf(w, "All %d tests completed successfully!\n", st.runs)
		return nil
	}
	fmt.Fprintf(w, "%s[%d / %d] passed\n", failLabel("Test failures: "), st.successes, st.runs)
	return errSelfTest
}
