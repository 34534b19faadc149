package consolet

import "io"

// EachLine calls fn for every line of the input source, line break
// included, until end of input. A non-nil error from fn stops the
// iteration and is returned; read failures other than end of input are
// returned as-is.
func (c *Console) EachLine(fn func(string) error) error {
	for {
		line, err := c.in.ReadString('\n')
		if line != "" {
			if ferr := fn(line); ferr != nil {
				return ferr
			}
		}
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
	}
}

// EachChunk is EachLine in chunks of n lines. A trailing partial chunk
// is still delivered. n below 1 is treated as 1.
func (c *Console) EachChunk(n int, fn func([]string) error) error {
	if n < 1 {
		n = 1
	}
	var chunk []string
	err := c.EachLine(func(line string) error {
		chunk = append(chunk, line)
		if len(chunk) == n {
			full := chunk
			chunk = nil
			return fn(full)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if len(chunk) > 0 {
		return fn(chunk)
	}
	return nil
}
