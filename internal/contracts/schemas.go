package contracts

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/pr-poehali-dev/real-estate-venture-1/schemas"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const schemasRoot = "documents"

var (
	compileOnce     sync.Once
	compileErr      error
	compiledSchemas map[string]*jsonschema.Schema
)

// compileAll компилирует все встроенные схемы один раз за процесс.
// Схемы добавляются как ресурсы, чтобы работали ссылки $ref между файлами.
func compileAll() (map[string]*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	var paths []string
	err := fs.WalkDir(schemas.SchemasFS, schemasRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".json") {
			return nil
		}
		file, err := schemas.SchemasFS.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()
		if err := compiler.AddResource(path, file); err != nil {
			return fmt.Errorf("failed to add schema resource %s: %w", path, err)
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking schema resources: %w", err)
	}

	result := make(map[string]*jsonschema.Schema, len(paths))
	for _, path := range paths {
		schema, err := compiler.Compile(path)
		if err != nil {
			return nil, fmt.Errorf("could not compile schema %s: %w", path, err)
		}
		key := generateKeyFromPath(path)
		if key == "" {
			return nil, fmt.Errorf("unexpected schema path %s", path)
		}
		result[key] = schema
	}
	return result, nil
}

// generateKeyFromPath преобразует путь вида "documents/site-content/v1.json"
// в ключ вида "SiteContentDocument/1.0.0".
func generateKeyFromPath(path string) string {
	trimmed := strings.TrimPrefix(path, schemasRoot+"/")
	trimmed = strings.TrimSuffix(trimmed, ".json")

	parts := strings.Split(trimmed, "/")
	if len(parts) != 2 || !strings.HasPrefix(parts[1], "v") {
		return ""
	}

	caser := cases.Title(language.English)

	var name strings.Builder
	for _, p := range strings.Split(parts[0], "-") {
		name.WriteString(caser.String(p))
	}
	name.WriteString("Document")

	version := strings.TrimPrefix(parts[1], "v") + ".0.0"

	return fmt.Sprintf("%s/%s", name.String(), version)
}

// ValidateDocument проверяет JSON-представление документа по его схеме
func ValidateDocument(docType, version string, body []byte) error {
	compileOnce.Do(func() {
		compiledSchemas, compileErr = compileAll()
	})
	if compileErr != nil {
		return compileErr
	}

	key := fmt.Sprintf("%s/%s", docType, version)
	schema, ok := compiledSchemas[key]
	if !ok {
		return fmt.Errorf("schema for document '%s' version '%s' not found", docType, version)
	}

	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		return fmt.Errorf("document is not a valid JSON: %w", err)
	}

	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("JSON schema validation failed: %w", err)
	}
	return nil
}

// Имена и версии документов
const (
	CatalogDocument     = "CatalogDocument"
	SiteContentDocument = "SiteContentDocument"
	CurrentVersion      = "1.0.0"
)
