package config

// DefaultWorkspaceYAML is written by 'ngplug config init'.
const DefaultWorkspaceYAML = `# ngplug workspace
build:
  context: .
  mode: production
  entry:
    main: [src/main.ts]
    polyfills: [src/polyfills.ts]
    styles: [src/styles.css]
  output:
    path: dist
    filename: "[name].js"
  optimization:
    runtimeChunk: single
    splitChunks:
      chunks: all
  plugins:
    - name: AngularCompilerPlugin
      tsConfig: tsconfig.app.json
      entryModule: src/app/app.module#AppModule
    - name: DefinePlugin
      definitions:
        PRODUCTION: "true"

options:
  pluginName: widgets
  modulePath: src/app/widget-module#WidgetModule
  sharedLibs: core-lib
`
