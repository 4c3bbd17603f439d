package consumer

const helpReply = `*✨ info BOT KEUANGAN PRIBADI ✨*

Berikut adalah perintah yang tersedia:

*💸 Transaksi*
[jumlah], [kategori], [keterangan] - Tambah pengeluaran (default)
/masuk [jumlah], [kategori], [keterangan] - Tambah pemasukan

*📊 Laporan*
/saldo (/s) - Lihat saldo saat ini
/laporan (/l) - Lihat laporan hari ini
/lh - Laporan hari ini
/lm - Laporan minggu ini
/lb - Laporan bulan ini
/lt - Laporan tahun ini

*ℹ️ Lainnya*
/info (/i) - Tampilkan pesan info ini

*📝 Alias Singkat:*
/s - Cek saldo
/l - Laporan hari ini
/t - Tambah pengeluaran
/m - Tambah pemasukan

*Contoh:*
50000, Makanan, Makan siang di warteg
/m 1000000, Gaji, Gaji bulanan`

const reportHelpReply = `*📊 PANDUAN LAPORAN TRANSAKSI*

*Format Dasar:*
/laporan [opsi] atau /l [opsi]

*Alias Singkat:*
/lh - Laporan hari ini
/lm - Laporan minggu ini
/lb - Laporan bulan ini
/lt - Laporan tahun ini
/lk - Laporan per kategori

*Periode Waktu:*
/l hari - Laporan hari ini
/l minggu - Laporan minggu ini
/l bulan - Laporan bulan ini
/l tahun - Laporan tahun ini

*Jumlah Transaksi:*
/l 5 - Tampilkan 5 transaksi terakhir
/l 20 - Tampilkan 20 transaksi terakhir

*Filter Kategori:*
/l makanan - Laporan transaksi kategori Makanan
/l transportasi - Laporan transaksi kategori Transportasi

*Filter Tanggal:*
/l dari 2023-05-01 - Laporan sejak 1 Mei 2023
/l dari 2023-05-01 sampai 2023-05-31 - Laporan periode tertentu

*Laporan Per Kategori:*
/l kategori - Laporan dikelompokkan per kategori
/lb kategori - Laporan bulan ini per kategori

*Ekspor Laporan:*
/l export - Ekspor laporan hari ini sebagai file CSV
/lb export - Ekspor laporan bulan ini

*Contoh Kombinasi:*
/l makanan 10 - 10 transaksi terakhir kategori Makanan
/lb kategori - Laporan bulan ini per kategori`

const (
	unrecognizedReply = "❓ *Perintah tidak dikenali*\n\nKetik */info* atau */h* untuk melihat daftar perintah yang tersedia."

	apologyReply = "❌ *Terjadi kesalahan*\n\nMaaf, terjadi kesalahan saat memproses perintah Anda. Silakan coba lagi."

	notRegisteredReply = "❌ *Akun tidak ditemukan!*\n\nAnda belum terdaftar. Silakan daftar terlebih dahulu melalui halaman web."

	invalidAmountReply = "❌ *Jumlah tidak valid*\n\nJumlah harus berupa angka positif."

	addFailedReply = "❌ *Gagal mencatat transaksi*\n\nSilakan coba lagi."

	balanceFailedReply = "❌ *Gagal mendapatkan saldo*\n\nSilakan coba lagi."

	reportFailedReply = "❌ *Gagal mendapatkan laporan*\n\nSilakan coba lagi."
)
