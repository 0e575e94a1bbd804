package extract

import (
	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"

	"badc0de.net/pkg/go-atlas/atlas"
)

// Bucket layout of the resource file. The sprite PNGs go into "sprites"
// keyed by output filename; the YAML index goes into "atlas" under "index".
var (
	spritesBucket = []byte("sprites")
	atlasBucket   = []byte("atlas")
	indexKey      = []byte("index")
)

// writeResource stores the extracted sprites into a bbolt resource file,
// so engines that load assets out of a single database file can consume
// the atlas without touching the loose PNGs.
func writeResource(path string, ta *atlas.TextureAtlas, crops []crop) error {
	db, err := bolt.Open(path, 0666, nil)
	if err != nil {
		return &WriteError{Path: path, Err: errors.Wrap(err, "opening resource file")}
	}
	defer db.Close()

	err = db.Update(func(tx *bolt.Tx) error {
		buck, err := tx.CreateBucketIfNotExists(spritesBucket)
		if err != nil {
			return err
		}
		for _, c := range crops {
			if err := buck.Put([]byte(c.sub.FileName()), c.png); err != nil {
				return errors.Wrapf(err, "storing sprite %q", c.sub.Name)
			}
		}

		idxBuck, err := tx.CreateBucketIfNotExists(atlasBucket)
		if err != nil {
			return err
		}
		idx, err := indexBytes(ta)
		if err != nil {
			return err
		}
		return idxBuck.Put(indexKey, idx)
	})
	if err != nil {
		return &WriteError{Path: path, Err: errors.Wrap(err, "storing sprites in resource file")}
	}
	return nil
}
