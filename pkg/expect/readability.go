package expect

// The words below only make call sites read like sentences:
//
//	Expect(n).To().Be().At().Least(3)
//
// They return the chain untouched and never alter flags.

func (c *Chain[T]) To() *Chain[T]    { return c }
func (c *Chain[T]) Be() *Chain[T]    { return c }
func (c *Chain[T]) Been() *Chain[T]  { return c }
func (c *Chain[T]) Is() *Chain[T]    { return c }
func (c *Chain[T]) That() *Chain[T]  { return c }
func (c *Chain[T]) Which() *Chain[T] { return c }
func (c *Chain[T]) And() *Chain[T]   { return c }
func (c *Chain[T]) Then() *Chain[T]  { return c }
func (c *Chain[T]) Has() *Chain[T]   { return c }
func (c *Chain[T]) Have() *Chain[T]  { return c }
func (c *Chain[T]) With() *Chain[T]  { return c }
func (c *Chain[T]) At() *Chain[T]    { return c }
func (c *Chain[T]) Of() *Chain[T]    { return c }
func (c *Chain[T]) Same() *Chain[T]  { return c }
