// validate-db checks that a MIME dataset file parses as a JSON object
// mapping MIME types to arrays of extension strings. It is meant to run in
// the build pipeline before compilation so a malformed dataset fails the
// build with a readable message instead of shipping. The runtime loader
// tolerates a bad dataset on its own; this check exists so it never has to.
//
// usage: validate-db [path]
//
// The path defaults to dataset/mime_db.json. Beyond the structural check it
// warns about entries with empty extension lists and about duplicate
// extension claims, which the first-claim-wins inversion silently discards.
package main

import (
	"os"

	"github.com/GaneshJadhavOnGitHub/mime-to-ext/dataset"
	"github.com/sirupsen/logrus"
)

const defaultPath = "dataset/mime_db.json"

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	path := defaultPath
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("cannot open dataset: %v", err)
	}
	defer f.Close()

	table, err := dataset.Parse(f)
	if err != nil {
		log.Fatalf("%s is not a valid MIME dataset: %v", path, err)
	}

	claimed := make(map[string]string)
	for _, mimeType := range table.Types() {
		exts, _ := table.Extensions(mimeType)
		if len(exts) == 0 {
			log.Warnf("%s: empty extension list", mimeType)
		}
		for _, ext := range exts {
			if owner, ok := claimed[ext]; ok {
				log.Warnf("%s: extension %q already claimed by %s, this claim is ignored",
					mimeType, ext, owner)
				continue
			}
			claimed[ext] = mimeType
		}
	}

	log.Infof("%s: %d MIME types, %d extensions", path, table.Len(), len(claimed))
}
