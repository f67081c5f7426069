package entrypoint

import "fmt"

const contentTemplate = `export * from '%[1]s';
export * from '%[2]s';
import { %[3]s } from '%[2]s';
export default %[3]s;
`

// Generate returns entry source that re-exports the module and its factory and
// exposes the factory as the default export.
func Generate(ref ModuleReference) string {
	return fmt.Sprintf(contentTemplate, ref.Path, ref.FactoryPath(), ref.FactoryName())
}
