// Package minio implements blobstore.BlobStore for MinIO and other
// S3-compatible object storage services.
//
// # Usage
//
//	client, err := minio.New("play.min.io", &minio.Options{
//	    Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
//	    Secure: true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	store := minioblob.NewStore(client, "my-bucket", "embeddings/")
package minio
