package kvdb

const RecentsBucket = "recents"

var buckets = []string{RecentsBucket}

type DB interface {
	Set(bucket string, key string, value string) error
	Get(bucket string, key string) (string, error)
	Update(bucket string, key string, fn func(current string, found bool) (string, error)) error
	Delete(bucket string, key string) error
	GetAll(bucket string) (map[string]string, error)
	Clear(bucket string) error
	Close() error
}
