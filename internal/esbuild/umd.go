package esbuild

import (
	"fmt"
	"strconv"
)

// umdWrapper returns the banner and footer that turn a CommonJS bundle into a
// UMD module exposed as library. Under script loading, externals are looked
// up on the global object by name.
func umdWrapper(library, globalObject string) (banner, footer string) {
	name := strconv.Quote(library)
	banner = fmt.Sprintf(`(function (root, factory) {
  if (typeof exports === "object" && typeof module === "object")
    module.exports = factory(require);
  else if (typeof define === "function" && define.amd)
    define(["require"], factory);
  else if (typeof exports === "object")
    exports[%[1]s] = factory(require);
  else
    root[%[1]s] = factory(function (id) { return root[id]; });
})(%[2]s, function (require) {
var module = { exports: {} }, exports = module.exports;`, name, globalObject)
	footer = `return module.exports;
});`
	return banner, footer
}
