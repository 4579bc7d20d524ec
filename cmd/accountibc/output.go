package main

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io/ioutil"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	yaml "gopkg.in/yaml.v2"
)

// printOutput writes the value in the output format selected on the viper instance. YAML output is
// produced from the JSON encoding so that raw JSON payloads are rendered as documents.
func printOutput(cmd *cobra.Command, v *viper.Viper, o interface{}) error {
	buf := new(bytes.Buffer)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(o); err != nil {
		return err
	}

	bz := buf.Bytes()
	if v.GetString(flagOutput) == outputYAML {
		var doc interface{}
		if err := yaml.Unmarshal(bz, &doc); err != nil {
			return err
		}

		var err error
		if bz, err = yaml.Marshal(doc); err != nil {
			return err
		}
	}

	_, err := cmd.OutOrStdout().Write(bz)
	return err
}

// readInput reads the file at path, or the command's input when path is "-". When the base64 flag
// is set the content is decoded first.
func readInput(cmd *cobra.Command, v *viper.Viper, path string) ([]byte, error) {
	var (
		bz  []byte
		err error
	)

	if path == "-" {
		bz, err = ioutil.ReadAll(cmd.InOrStdin())
	} else {
		bz, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}

	if !v.GetBool(flagBase64) {
		return bz, nil
	}

	return base64.StdEncoding.DecodeString(strings.TrimSpace(string(bz)))
}
