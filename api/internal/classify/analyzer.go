package classify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lang-detect/api/internal/classify/types"
	"lang-detect/api/internal/stopwords"
	"lang-detect/api/internal/tokenize"
)

// Oracle answers with a raw verdict string and never fails: a broken backend
// shows up as a degraded string instead.
type Oracle interface {
	Classify(ctx context.Context, text string) string
}

type Options struct {
	ShortWordSize int
	MinFreq       float64
	TopN          int
}

func DefaultOptions() Options {
	return Options{
		ShortWordSize: DefaultShortWordSize,
		MinFreq:       DefaultMinFreq,
		TopN:          DefaultTopN,
	}
}

// Analyzer runs the three classifiers over one text and times them.
type Analyzer struct {
	freq   *Frequency
	short  *ShortWord
	oracle Oracle
	now    func() time.Time
}

func NewAnalyzer(ref *stopwords.Reference, opts Options, oracle Oracle) (*Analyzer, error) {
	if ref == nil {
		return nil, errors.New("analyzer: stopword reference is nil")
	}
	if oracle == nil {
		return nil, errors.New("analyzer: oracle is nil")
	}
	return &Analyzer{
		freq:   NewFrequency(ref, opts.TopN),
		short:  NewShortWord(ref, opts.ShortWordSize, opts.MinFreq),
		oracle: oracle,
		now:    time.Now,
	}, nil
}

// Analyze classifies text. Only classifier bugs are returned as errors; the
// oracle degrades on its own.
func (a *Analyzer) Analyze(ctx context.Context, text string) (types.Result, error) {
	start := a.now()

	tokens := tokenize.Text(text)
	table, freqVerdict := a.freq.Classify(tokens)

	shortWords, shortVerdict, err := a.short.Classify(tokens)
	if err != nil {
		return types.Result{}, fmt.Errorf("analyze: %w", err)
	}

	oracleVerdict := a.oracle.Classify(ctx, text)

	res := types.Result{
		TopWords:         table.MostCommon(a.freq.TopN()),
		FrequencyVerdict: freqVerdict,
		ShortWords:       shortWords,
		ShortWordVerdict: shortVerdict,
		ShortWordSize:    a.short.Size(),
		OracleVerdict:    oracleVerdict,
		Elapsed:          a.now().Sub(start),
	}
	if n, ok := a.oracle.(interface{ Name() string }); ok {
		res.OracleEngine = n.Name()
	}
	return res, nil
}
