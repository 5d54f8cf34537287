package export

// This package defines common methods and operations for exporting labeled and unlabeled polygon features from a crowdsourcing campaign database as GeoJSON FeatureCollection documents, for use as machine-learning training and target data. Common operations include: exporting training features, exporting target features, combining documents and partitioning documents.
