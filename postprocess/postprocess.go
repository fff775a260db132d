// Package postprocess transforms rendered template bodies before they are
// written.
//
// A chain is empty by default, in which case generated files contain the
// rendered body verbatim. Typical processors format source code:
//
//	eng := engine.New(engine.WithPostProcessor(processors.NewGoImports()))
package postprocess

import "fmt"

// Processor rewrites the content destined for outputPath. Processors
// return content unchanged for files they do not handle.
type Processor interface {
	ProcessContent(outputPath string, content []byte) ([]byte, error)
}

// ProcessorFunc adapts a plain function to Processor.
type ProcessorFunc func(outputPath string, content []byte) ([]byte, error)

func (f ProcessorFunc) ProcessContent(outputPath string, content []byte) ([]byte, error) {
	return f(outputPath, content)
}

// Chain applies processors in the order they were added.
type Chain struct {
	processors []Processor
}

func NewChain(processors ...Processor) *Chain {
	return &Chain{processors: processors}
}

func (c *Chain) Add(processor Processor) {
	c.processors = append(c.processors, processor)
}

func (c *Chain) AddFunc(fn func(outputPath string, content []byte) ([]byte, error)) {
	c.Add(ProcessorFunc(fn))
}

// Process feeds content through every processor. The first failure aborts
// the chain and no partial result is returned.
func (c *Chain) Process(outputPath string, content []byte) ([]byte, error) {
	result := content
	for i, processor := range c.processors {
		processed, err := processor.ProcessContent(outputPath, result)
		if err != nil {
			return nil, fmt.Errorf("processor %d failed for %s: %w", i, outputPath, err)
		}
		result = processed
	}
	return result, nil
}

func (c *Chain) HasProcessors() bool {
	return len(c.processors) > 0
}

func (c *Chain) Len() int {
	return len(c.processors)
}
